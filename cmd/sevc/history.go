package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quillhaven/severance-compass/internal/cli"
	"github.com/quillhaven/severance-compass/internal/engine"
	"github.com/quillhaven/severance-compass/internal/format"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved analyses",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved analyses, newest first",
		RunE:  runHistoryList,
	}

	cmd.Flags().Int("limit", 20, "Maximum analyses to show")
	_ = viper.BindPFlag("history.limit", cmd.Flags().Lookup("limit"))

	return cmd
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	store, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	analyses, err := store.ListAnalyses(cmd.Context(), viper.GetInt("history.limit"))
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if len(analyses) == 0 {
		cmd.Println(cli.SubtleStyle.Render("No saved analyses. Run 'sevc analyze --save' first."))
		return nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-5s %-17s %-5s %-8s %-13s %-13s %s\n",
		"ID", "DATE", "JUR", "TENURE", "RECOMMENDED", "GAP", "OPTION"))

	for _, saved := range analyses {
		gap, option := "—", "—"
		if saved.Analysis != nil {
			gap = format.Currency(saved.Analysis.PotentialGap)
			option = string(saved.Analysis.Recommended.Type)
		}
		b.WriteString(fmt.Sprintf("%-5d %-17s %-5s %-8s %-13s %-13s %s\n",
			saved.ID,
			saved.CreatedAt.Format("2006-01-02 15:04"),
			saved.Profile.Jurisdiction,
			fmt.Sprintf("%dy %dm", saved.Profile.YearsOfService, saved.Profile.MonthsOfService),
			format.Currency(saved.Estimate.Recommended.Amount),
			gap,
			option,
		))
	}

	cmd.Println(cli.RenderBox("Analysis History", strings.TrimRight(b.String(), "\n")))
	return nil
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved analysis in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid analysis id %q", args[0])
	}

	store, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	saved, err := store.GetAnalysis(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load analysis: %w", err)
	}

	cmd.Println(cli.RenderEstimate(&saved.Estimate))
	if saved.Analysis != nil {
		cmd.Println(cli.RenderCostAnalysis(saved.Analysis))
		cmd.Println(cli.RenderGuidance(engine.ComposeGuidance(saved.Analysis.PotentialGap, saved.Analysis.Options)))
	}

	return nil
}
