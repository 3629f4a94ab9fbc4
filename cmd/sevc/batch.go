package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quillhaven/severance-compass/internal/cli"
	"github.com/quillhaven/severance-compass/internal/engine"
	"github.com/quillhaven/severance-compass/internal/model"
)

// batchColumns is the required input-CSV header. Offer and payroll may be
// left empty per row.
var batchColumns = []string{"jurisdiction", "years", "months", "age", "position", "salary", "union", "offer", "payroll"}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Estimate severance for a CSV of employee profiles",
		Long: `Read employee profiles from a CSV file and write a summary CSV with
each profile's statutory minimum, common-law range, recommended amount,
and potential gap. Invalid rows are reported and skipped.

Expected input header:
  ` + headerLine(),
		RunE: runBatch,
	}

	cmd.Flags().StringP("input", "i", "", "Input CSV file (required)")
	cmd.Flags().StringP("output", "o", "estimates.csv", "Output CSV file")
	_ = cmd.MarkFlagRequired("input")

	_ = viper.BindPFlag("batch.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("batch.output", cmd.Flags().Lookup("output"))

	return cmd
}

func headerLine() string {
	line := ""
	for i, col := range batchColumns {
		if i > 0 {
			line += ","
		}
		line += col
	}
	return line
}

func runBatch(cmd *cobra.Command, _ []string) error {
	inputPath := viper.GetString("batch.input")
	outputPath := viper.GetString("batch.output")

	rows, err := readBatchInput(inputPath)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		slog.Info("No profiles to estimate", "input", inputPath)
		return nil
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	writer := csv.NewWriter(out)
	header := append([]string{}, batchColumns...)
	header = append(header,
		"statutory_weeks", "statutory_amount",
		"severance_weeks", "severance_amount",
		"min_weeks", "max_weeks",
		"recommended_weeks", "recommended_amount", "potential_gap")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Estimating profiles..."),
	)

	estimated, skipped := 0, 0
	for i, row := range rows {
		_ = bar.Add(1)

		profile, offer, parseErr := parseBatchRow(row)
		if parseErr != nil {
			slog.Warn("Skipping invalid row", "row", i+2, "error", parseErr)
			skipped++
			continue
		}

		estimate, estErr := engine.Estimate(profile)
		if estErr != nil {
			slog.Warn("Skipping rejected profile", "row", i+2, "error", estErr)
			skipped++
			continue
		}

		gap := engine.PotentialGap(offer, estimate.Recommended.Amount, estimate.StatutoryMinimum.Amount)
		if err := writer.Write(batchOutputRow(row, estimate, gap)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
		estimated++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	fmt.Fprintln(os.Stderr)
	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Estimated %d profiles (%d skipped) → %s", estimated, skipped, outputPath)))
	return nil
}

func readBatchInput(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	if len(header) != len(batchColumns) {
		return nil, fmt.Errorf("expected %d columns (%s), got %d", len(batchColumns), headerLine(), len(header))
	}
	for i, col := range batchColumns {
		if header[i] != col {
			return nil, fmt.Errorf("expected column %d to be %q, got %q", i+1, col, header[i])
		}
	}

	return records[1:], nil
}

func parseBatchRow(row []string) (profile *model.EmployeeProfile, offer *float64, err error) {
	if len(row) != len(batchColumns) {
		return nil, nil, fmt.Errorf("expected %d fields, got %d", len(batchColumns), len(row))
	}

	years, err := strconv.Atoi(row[1])
	if err != nil {
		return nil, nil, fmt.Errorf("invalid years %q", row[1])
	}
	months := 0
	if row[2] != "" {
		if months, err = strconv.Atoi(row[2]); err != nil {
			return nil, nil, fmt.Errorf("invalid months %q", row[2])
		}
	}
	salary, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid salary %q", row[5])
	}

	union := false
	if row[6] != "" {
		if union, err = strconv.ParseBool(row[6]); err != nil {
			return nil, nil, fmt.Errorf("invalid union flag %q", row[6])
		}
	}

	profile = &model.EmployeeProfile{
		Jurisdiction:    row[0],
		YearsOfService:  years,
		MonthsOfService: months,
		AgeBracket:      model.AgeBracket(row[3]),
		Position:        model.Position(row[4]),
		AnnualSalary:    salary,
		UnionMember:     union,
	}

	if row[7] != "" {
		v, parseErr := strconv.ParseFloat(row[7], 64)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("invalid offer %q", row[7])
		}
		offer = &v
	}
	if row[8] != "" {
		v, parseErr := strconv.ParseFloat(row[8], 64)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("invalid payroll %q", row[8])
		}
		profile.EmployerPayroll = &v
	}

	return profile, offer, nil
}

func batchOutputRow(input []string, estimate *model.EntitlementEstimate, gap float64) []string {
	sevWeeks, sevAmount := "", ""
	if estimate.StatutorySeverance != nil {
		sevWeeks = strconv.Itoa(estimate.StatutorySeverance.Weeks)
		sevAmount = strconv.FormatFloat(estimate.StatutorySeverance.Amount, 'f', 0, 64)
	}

	row := append([]string{}, input...)
	return append(row,
		strconv.Itoa(estimate.StatutoryMinimum.Weeks),
		strconv.FormatFloat(estimate.StatutoryMinimum.Amount, 'f', 0, 64),
		sevWeeks,
		sevAmount,
		strconv.Itoa(estimate.CommonLaw.MinWeeks),
		strconv.Itoa(estimate.CommonLaw.MaxWeeks),
		strconv.Itoa(estimate.Recommended.Weeks),
		strconv.FormatFloat(estimate.Recommended.Amount, 'f', 0, 64),
		strconv.FormatFloat(gap, 'f', 0, 64),
	)
}
