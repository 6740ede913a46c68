package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bft-labs/mutations/internal/cliconfig"
	"github.com/bft-labs/mutations/pkg/arith"
)

// EvalResult is the json output of add and mult.
type EvalResult struct {
	Op     arith.Op     `json:"op"`
	Left   uint64       `json:"left"`
	Right  uint64       `json:"right"`
	Result uint64       `json:"result"`
	Policy arith.Policy `json:"policy"`
}

func newEvalCommand(opts *RootOptions, op arith.Op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(op) + " <left> <right>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			right, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			policy := opts.Config.ArithPolicy()
			result, err := arith.Eval(op, policy, left, right)
			if err != nil {
				return err
			}
			opts.Log.Debug().
				Str("op", string(op)).
				Uint64("left", left).
				Uint64("right", right).
				Uint64("result", result).
				Str("policy", string(policy)).
				Msg("evaluated")

			out := cmd.OutOrStdout()
			if opts.Config.Format == cliconfig.FormatJSON {
				return json.NewEncoder(out).Encode(EvalResult{
					Op:     op,
					Left:   left,
					Right:  right,
					Result: result,
					Policy: policy,
				})
			}
			_, err = fmt.Fprintln(out, result)
			return err
		},
	}
}

// parseOperand accepts decimal or 0x/0o/0b prefixed unsigned integers.
func parseOperand(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("operand %q: not an unsigned 64-bit integer", s)
	}
	return v, nil
}
