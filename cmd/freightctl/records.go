package main

import (
	"fmt"

	records "freight-console/internal/features/records/domain"
	tracking "freight-console/internal/features/tracking/domain"

	"github.com/spf13/cobra"
)

func newNormalizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [record-file]",
		Short: "Print a record with every JSON field decoded into an object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(cmd, firstArg(args))
			if err != nil {
				return err
			}
			return render(cmd, opts, record)
		},
	}
}

// CarrierResult is the classification printed by the classify command.
type CarrierResult struct {
	RecordID string          `json:"recordId"`
	Carrier  records.Carrier `json:"carrier"`
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [record-file]",
		Short: "Decide which carrier produced a record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(cmd, firstArg(args))
			if err != nil {
				return err
			}
			return render(cmd, opts, CarrierResult{
				RecordID: record.ID,
				Carrier:  records.ClassifyCarrier(record),
			})
		},
	}
}

func newSummarizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <records-file>...",
		Short: "Extract shipment summaries, skipping records without shipment data",
		Long:  "Each file holds one record or a list of records. Use - to read stdin.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var all []records.OrderRecord
			for _, path := range args {
				batch, err := loadRecords(cmd, path)
				if err != nil {
					return err
				}
				all = append(all, batch...)
			}
			return render(cmd, opts, records.SummarizeShipments(all))
		},
	}
}

func newTrackingNumberCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tracking-number [record-file]",
		Short: "Infer the reference number used to track a record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(cmd, firstArg(args))
			if err != nil {
				return err
			}
			number, ok := tracking.InferTrackingNumber(record)
			if !ok {
				return fmt.Errorf("record %q carries no tracking number", record.ID)
			}
			return render(cmd, opts, number)
		},
	}
}

// ResolveResult is the value printed by the resolve command.
type ResolveResult struct {
	Source records.Source `json:"source"`
	Key    string         `json:"key"`
	Value  string         `json:"value"`
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "resolve <key> [record-file]",
		Short: "Find a value under any spelling of key in one JSON field of a record",
		Long:  "Tries the '#'-prefixed and lower-cased spellings of key, then any key containing it.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(cmd, firstArg(args[1:]))
			if err != nil {
				return err
			}

			src := records.Source(source)
			value, ok := records.ResolveValue(record.Blob(src), args[0])
			if !ok {
				return fmt.Errorf("no value for %q in %s", args[0], src)
			}
			return render(cmd, opts, ResolveResult{Source: src, Key: args[0], Value: value})
		},
	}

	cmd.Flags().StringVar(&source, "source", string(records.SourceOrders), "record field to search")
	return cmd
}

func loadRecord(cmd *cobra.Command, path string) (records.OrderRecord, error) {
	var record records.OrderRecord
	if err := load(cmd, path, &record); err != nil {
		return records.OrderRecord{}, err
	}
	return record, nil
}

func loadRecords(cmd *cobra.Command, path string) ([]records.OrderRecord, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	var batch []records.OrderRecord
	if err := decodeInput(data, &batch); err == nil {
		return batch, nil
	}

	var record records.OrderRecord
	if err := decodeInput(data, &record); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return []records.OrderRecord{record}, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
