package main

import (
	"freight-console/internal/features/bol/domain"
	"freight-console/internal/features/bol/service"

	"github.com/spf13/cobra"
)

func newBolCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bol",
		Short: "Validate a BOL form and print the carrier request payload",
	}

	// No relays: the CLI only builds payloads.
	svc := service.NewBolService(nil, nil)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "estes [form-file]",
			Short: "Build an Estes BOL request",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var form domain.EstesFormState
				if err := load(cmd, firstArg(args), &form); err != nil {
					return err
				}
				req, err := svc.BuildEstes(form)
				if err != nil {
					return err
				}
				return render(cmd, opts, req)
			},
		},
		&cobra.Command{
			Use:   "xpo [form-file]",
			Short: "Build an XPO BOL request",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var form domain.XpoFormState
				if err := load(cmd, firstArg(args), &form); err != nil {
					return err
				}
				req, err := svc.BuildXpo(form)
				if err != nil {
					return err
				}
				return render(cmd, opts, req)
			},
		},
	)
	return cmd
}
