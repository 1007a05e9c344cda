// clefdrill is a terminal drill for reading notes on the treble and bass
// clefs. The root command runs the interactive quiz; subcommands inspect
// and reset the persisted practice data.
package main

func main() {
	Execute()
}
