package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/strikegate/core/schema"
)

var errCheckInvalid = errors.New("request is invalid")

var checkCmd = &cobra.Command{
	Use:   "check <request.json>",
	Short: "Validate a request file against the request schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := checkFile(args[0])
		if err != nil {
			return err
		}
		if result.Valid {
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		}
		for _, violation := range result.Errors {
			fmt.Fprintln(cmd.OutOrStdout(), violation)
		}
		return errCheckInvalid
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFile(path string) (schema.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return schema.Result{
			Valid:  false,
			Errors: []string{fmt.Sprintf("/ file is not valid JSON: %v", err)},
		}, nil
	}

	return schema.ValidateRequest(decoded), nil
}
