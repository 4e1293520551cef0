// Copyright (c) 2025 Recicla
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"recicla/cli/internal/export"
	"recicla/cli/internal/httperrors"
	"recicla/cli/internal/keychain"
	"recicla/cli/internal/logging"
	"recicla/cli/internal/xdg"

	"atomicgo.dev/cursor"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var exportFlags listFlags

// exportCmd copies the backend's business data into the local reporting
// database configured with 'recicla connect'. Re-running it refreshes the
// copy; rows are upserted by id.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export business data to the local reporting database",
	Long: `The export command pulls materials, purchases, sales and expenses from the
recycling API and upserts them into the PostgreSQL database configured with
'recicla connect'. The copy is idempotent and can be narrowed to a date
range with --desde and --hasta.

The DSN is read from RECICLA_DSN or DATABASE_URL when set, otherwise from
the OS keychain.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, ok, err := authedApp(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		dbDSN := strings.TrimSpace(os.Getenv("RECICLA_DSN"))
		if dbDSN == "" {
			dbDSN = strings.TrimSpace(os.Getenv("DATABASE_URL"))
		}
		if dbDSN == "" {
			km, kerr := keychain.GetManager()
			if kerr != nil {
				pterm.Println("❌ Secure storage is not available on this system")
				return kerr
			}
			dbDSN, _ = km.LoadReportsDSN()
		}
		if strings.TrimSpace(dbDSN) == "" {
			pterm.Println("⚠️  No reporting database configured")
			pterm.Println("   Please run: recicla connect")
			return nil
		}

		ctxDB, cancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err := pgxpool.New(ctxDB, dbDSN)
		if err != nil {
			cancel()
			pterm.Printf("❌ Failed to connect to reporting database\n")
			pterm.Println(logging.PresentError("", err))
			return err
		}
		if err := pool.Ping(ctxDB); err != nil {
			cancel()
			pool.Close()
			pterm.Printf("❌ Failed to connect to reporting database\n")
			pterm.Println(logging.PresentError("", err))
			return err
		}
		cancel()
		defer pool.Close()

		if last := lastExportInfo(); last != "" {
			pterm.Println("Previous export: " + last)
		}

		cursor.Hide()
		defer cursor.Show()

		exp := export.New(a.client, pool)
		if err := exp.EnsureSchema(ctx); err != nil {
			pterm.Println(logging.PresentError("", err))
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "exporting data", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
		sum, err := exp.Run(ctx, exportFlags.filter())
		stopSpinner()
		if err != nil {
			return httperrors.FormatNetworkError(err, "export")
		}

		rows := pterm.TableData{
			{"Dataset", "Rows"},
			{"Materiales", strconv.Itoa(sum.Materiales)},
			{"Compras generales", strconv.Itoa(sum.ComprasGenerales)},
			{"Compras de materiales", strconv.Itoa(sum.ComprasMateriales)},
			{"Ventas", strconv.Itoa(sum.Ventas)},
			{"Gastos", strconv.Itoa(sum.Gastos)},
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		pterm.Println()
		pterm.Printf("✅ Export complete: %d row(s) written\n", sum.Total())

		recordLastExport(sum.Total())
		return nil
	},
}

// lastExport is the state recorded after each successful export.
type lastExport struct {
	At   time.Time `json:"at"`
	Rows int       `json:"rows"`
}

func lastExportPath() (string, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "last_export.json"), nil
}

func lastExportInfo() string {
	p, err := lastExportPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return ""
	}
	var le lastExport
	if json.Unmarshal(data, &le) != nil || le.At.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s (%d rows)", le.At.Local().Format("2006-01-02 15:04"), le.Rows)
}

func recordLastExport(rows int) {
	p, err := lastExportPath()
	if err != nil {
		return
	}
	b, err := json.Marshal(lastExport{At: time.Now(), Rows: rows})
	if err != nil {
		return
	}
	_ = os.WriteFile(p, b, 0o600)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportFlags.register(exportCmd)
}
