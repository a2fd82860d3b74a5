package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codegauntlet/gauntlet/internal/checks"
	"github.com/codegauntlet/gauntlet/pkg/check"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all check groups and their validators in run order",
	Run: func(cmd *cobra.Command, args []string) {
		reg := checks.DefaultRegistry()
		for groupName := range reg.GroupsInOrder() {
			fmt.Printf("%s:\n", groupName)
			for _, e := range reg.ErrorValidators(groupName) {
				fmt.Printf("  %s%s\n", e.ID, entryMarkers(e, false))
			}
			for _, e := range reg.WarningValidators(groupName) {
				fmt.Printf("  %s%s\n", e.ID, entryMarkers(e, true))
			}
		}
	},
}

func entryMarkers(e check.Entry, warning bool) string {
	var markers string
	if warning {
		markers += " (warning)"
	}
	if e.RequiredToken != "" {
		markers += fmt.Sprintf(" [token: %s]", e.RequiredToken)
	}
	return markers
}
