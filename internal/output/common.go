package output

import "fmt"

// CommandName is the program name echoed in the table header.
const CommandName = "kmer_counter"

// CommandLine is the header line describing the run, without the leading "# ".
func CommandLine(input string, k int) string {
	return fmt.Sprintf("Command: %s %s -k %d", CommandName, input, k)
}
