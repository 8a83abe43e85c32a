// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/elementary-assertions/internal/roles"
	"github.com/pdiddy/elementary-assertions/pkg/types"
)

var slotsCmd = &cobra.Command{
	Use:   "slots <document>",
	Short: "Print the legacy slot view of each assertion",
	Long: `Slots maps each assertion's role entries onto the legacy slots (actor,
theme, attr, topic, location) for consumers that have not moved to role
entries. Roles with no legacy slot are listed under other. Output is YAML
unless --json is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runSlots,
}

// assertionSlots is one entry of the slots output.
type assertionSlots struct {
	AssertionID string      `json:"assertion_id" yaml:"assertion_id"`
	SegmentID   string      `json:"segment_id" yaml:"segment_id"`
	Slots       roles.Slots `json:"slots" yaml:"slots"`
}

func slotsOf(doc *types.Document) []assertionSlots {
	out := make([]assertionSlots, 0, len(doc.Assertions))
	for _, a := range doc.Assertions {
		out = append(out, assertionSlots{
			AssertionID: a.ID,
			SegmentID:   a.SegmentID,
			Slots:       roles.ToSlots(a),
		})
	}
	return out
}

func runSlots(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	src, _, err := newRunner().Check(args[0])
	if err != nil {
		return err
	}
	entries := slotsOf(src.Doc)

	var data []byte
	if asJSON {
		data, err = json.MarshalIndent(entries, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(entries)
	}
	if err != nil {
		return fmt.Errorf("marshaling slots: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func init() {
	slotsCmd.Flags().Bool("json", false, "output as JSON instead of YAML")

	rootCmd.AddCommand(slotsCmd)
}
