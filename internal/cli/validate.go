package cli

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/form"
	"github.com/spf13/cobra"
)

var errInvalid = errors.New("validation failed")

func newValidateCommand() *cobra.Command {
	var email, password, confirmation, birthdate string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the form validators on the given values",
		Long: `Run the form validators on the given values and print one line per check.
Only flags that are set are checked. Blank values pass, as they do while
typing.`,
		Example: `  technoapp validate --email ana@mail.com --password secret123 --confirmation secret123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			type check struct {
				name   string
				result form.Result
			}
			var checks []check
			if flags.Changed("email") {
				checks = append(checks, check{"email", form.ValidateEmail(email)})
			}
			if flags.Changed("password") {
				checks = append(checks, check{"password", form.ValidatePassword(password)})
			}
			if flags.Changed("confirmation") {
				checks = append(checks, check{"confirmation", form.ValidateConfirmation(password, confirmation)})
			}
			if flags.Changed("birthdate") {
				checks = append(checks, check{"birthdate", form.ValidateDate(birthdate)})
			}

			if len(checks) == 0 {
				return errors.New("nothing to validate; pass --email, --password, --confirmation or --birthdate")
			}

			out := cmd.OutOrStdout()
			results := make([]form.Result, 0, len(checks))
			for _, c := range checks {
				results = append(results, c.result)
				if c.result.Valid {
					fmt.Fprintf(out, "%-13s ok\n", c.name)
				} else {
					fmt.Fprintf(out, "%-13s %s\n", c.name, c.result.Reason)
				}
			}

			if !form.All(results...).Valid {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().StringVar(&confirmation, "confirmation", "", "password confirmation")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "birthdate as dd/mm/yyyy")

	return cmd
}
