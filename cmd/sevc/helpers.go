package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quillhaven/severance-compass/internal/common"
	"github.com/quillhaven/severance-compass/internal/jurisdiction"
	"github.com/quillhaven/severance-compass/internal/model"
	"github.com/quillhaven/severance-compass/internal/storage"
)

// addProfileFlags registers the employee-profile flags shared by the
// estimate and analyze commands, bound to viper under the given prefix.
func addProfileFlags(cmd *cobra.Command, prefix string) {
	cmd.Flags().StringP("jurisdiction", "j", "ON", "Jurisdiction code (province, territory, or FED)")
	cmd.Flags().Int("years", 0, "Whole years of service")
	cmd.Flags().Int("months", 0, "Additional months of service (0-11)")
	cmd.Flags().String("age", string(model.Age41To50), "Age bracket")
	cmd.Flags().String("position", string(model.PositionProfessional), "Job position category")
	cmd.Flags().Float64("salary", 0, "Annual salary")
	cmd.Flags().Bool("union", false, "Union member (collectively bargained)")
	cmd.Flags().Float64("payroll", 0, "Employer's total annual payroll (0 = unknown)")

	for _, name := range []string{"jurisdiction", "years", "months", "age", "position", "salary", "union", "payroll"} {
		_ = viper.BindPFlag(prefix+"."+name, cmd.Flags().Lookup(name))
	}
}

// profileFromFlags builds a profile from the viper-bound flags.
func profileFromFlags(prefix string) *model.EmployeeProfile {
	profile := &model.EmployeeProfile{
		Jurisdiction:    viper.GetString(prefix + ".jurisdiction"),
		YearsOfService:  viper.GetInt(prefix + ".years"),
		MonthsOfService: viper.GetInt(prefix + ".months"),
		AgeBracket:      model.AgeBracket(viper.GetString(prefix + ".age")),
		Position:        model.Position(viper.GetString(prefix + ".position")),
		AnnualSalary:    viper.GetFloat64(prefix + ".salary"),
		UnionMember:     viper.GetBool(prefix + ".union"),
	}

	if payroll := viper.GetFloat64(prefix + ".payroll"); payroll > 0 {
		profile.EmployerPayroll = &payroll
	}

	return profile
}

// warnUnknownJurisdiction logs the documented-default fallback. The engine
// recovers on its own; the warning is the caller's job.
func warnUnknownJurisdiction(code string) {
	if !jurisdiction.Known(code) {
		common.LogWarn("Unrecognized jurisdiction, using default formulas and rates",
			common.Fields{"jurisdiction": code})
	}
}

// expandPath expands ~ and environment variables in a file path.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// openStorage opens (and migrates) the analysis-history database.
func openStorage(cmd *cobra.Command) (*storage.SQLiteStorage, error) {
	dbPath := expandPath(viper.GetString("database.path"))
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "sevc", "history.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := store.Migrate(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return store, nil
}

func optionalFlag(value float64) *float64 {
	if value > 0 {
		return &value
	}
	return nil
}
