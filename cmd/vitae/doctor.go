package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/vitae/pkg/tools"
)

// doctorCmd reports the resolved configuration and checks that the resume
// service answers at all. Secrets are only ever shown as set/unset.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report resolved configuration and service reachability",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ts := newToolset()
		fmt.Printf("Component: %s\n", ts.ComponentType())

		state, _ := ts.State().(tools.ToolsetState)
		pretty, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			fatal("Failed to render state", err)
		}
		fmt.Println(string(pretty))

		target := state.BaseURL
		if baseURL != "" {
			target = baseURL
		}
		if target == "" {
			fmt.Println("Reachability: skipped (no base URL configured)")
			return
		}

		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get(target)
		if err != nil {
			fmt.Printf("Reachability: FAILED (%v)\n", err)
			return
		}
		resp.Body.Close()
		fmt.Printf("Reachability: ok (status %d)\n", resp.StatusCode)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
