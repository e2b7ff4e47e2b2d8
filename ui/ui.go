// Package ui is the interactive text front end: a numbered algorithm menu and
// the tour printout.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/salesman/tsp"
)

// ErrNoChoice indicates the input ended before a valid choice was entered.
var ErrNoChoice = errors.New("ui: input ended without a choice")

// Choice is a menu entry number.
type Choice int

// Exit is the menu entry that ends the program.
const Exit Choice = 4

// Algorithm maps a choice to its solver; ok is false for Exit.
func (c Choice) Algorithm() (tsp.Algorithm, bool) {
	switch c {
	case 1:
		return tsp.NearestNeighbour, true
	case 2:
		return tsp.ShortestPath, true
	case 3:
		return tsp.MinimumSpanningTree, true
	default:
		return 0, false
	}
}

// Menu writes the numbered menu followed by the prompt.
func Menu(out io.Writer) {
	fmt.Fprintln(out, "Select an algorithm to solve the TSP:")
	for i, a := range tsp.Algorithms() {
		fmt.Fprintf(out, "%d. %s\n", i+1, a.Title())
	}
	fmt.Fprintf(out, "%d. Exit\n", Exit)
	fmt.Fprint(out, "Enter your choice (number): ")
}

// ChooseAlgorithm shows the menu and reads whitespace-separated tokens from in
// until one is a number between 1 and 4. Each rejected token prints a message
// and the menu again.
func ChooseAlgorithm(in io.Reader, out io.Writer) (Choice, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for {
		Menu(out)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			fmt.Fprintln(out)
			return 0, ErrNoChoice
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a number.")
			continue
		}
		if n < 1 || n > int(Exit) {
			fmt.Fprintln(out, "Choice must be between 1 and 4. Please try again.")
			continue
		}

		return Choice(n), nil
	}
}

// DisplaySolution prints the tour as hyphen-joined ids and the elapsed time in nanoseconds.
func DisplaySolution(out io.Writer, tour tsp.Tour, elapsed time.Duration) {
	fmt.Fprintln(out, tour.String())
	fmt.Fprintf(out, "Execution Time: %d nanoseconds\n", elapsed.Nanoseconds())
}
