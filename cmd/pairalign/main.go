// Command pairalign aligns pairs of biological sequences and profiles.
//
// Usage:
//
//	pairalign [command] [options]
//
// Commands:
//
//	global      Global (Needleman-Wunsch) alignment
//	local       Local (Smith-Waterman) alignment
//	score       Alignment score without a traceback
//	version     Show version information
package main

func main() {
	Execute()
}
