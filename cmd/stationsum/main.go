// Package main provides the stationsum CLI: the batch pipeline that
// turns raw dendrometer and TMS logger files into daily summary tables
// and stages the sensor metadata for the final join.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
