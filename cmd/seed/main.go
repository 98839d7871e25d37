// seed genera uno script SQL con i dati di base di una nuova installazione:
// stati e causali predefiniti dei movimenti e la riga singleton delle
// impostazioni di sicurezza.
//
// Uso: go run ./cmd/seed [file di output]
// Default: seed_defaults.sql nella directory corrente.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

var defaultStatuses = []string{
	"Da saldare",
	"Saldato",
	"In ritardo",
	"Annullato",
	"Da riconciliare",
}

var defaultReasons = []string{
	"Vendita",
	"Acquisto",
	"Stipendi",
	"Tasse e imposte",
	"Affitto",
	"Utenze",
	"Consulenze",
	"Rimborso",
	"Importazione bancaria",
}

func main() {
	outPath := "seed_defaults.sql"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	var b strings.Builder
	b.WriteString("-- Dati di base EasyCashFlows: stati, causali, impostazioni di sicurezza.\n")
	b.WriteString("-- Generato da cmd/seed. Idempotente: ON CONFLICT DO NOTHING.\n\n")

	b.WriteString("BEGIN;\n\n")

	for _, name := range defaultStatuses {
		fmt.Fprintf(&b,
			"INSERT INTO movement_statuses (id, name, is_active, created_at, updated_at)\n"+
				"VALUES ('%s', '%s', TRUE, NOW(), NOW())\n"+
				"ON CONFLICT (name) DO NOTHING;\n",
			uuid.New().String(), sqlEscape(name))
	}
	b.WriteString("\n")

	for _, name := range defaultReasons {
		fmt.Fprintf(&b,
			"INSERT INTO movement_reasons (id, name, is_active, created_at, updated_at)\n"+
				"VALUES ('%s', '%s', TRUE, NOW(), NOW())\n"+
				"ON CONFLICT (name) DO NOTHING;\n",
			uuid.New().String(), sqlEscape(name))
	}
	b.WriteString("\n")

	// Riga singleton (id fisso = 1) con i limiti di default.
	b.WriteString(
		"INSERT INTO security_settings\n" +
			"  (id, rate_limit_enabled, requests_per_minute, login_max_attempts, login_window_minutes, session_timeout_minutes, updated_at)\n" +
			"VALUES (1, TRUE, 300, 5, 15, 60, NOW())\n" +
			"ON CONFLICT (id) DO NOTHING;\n\n")

	b.WriteString("COMMIT;\n")

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "scrittura %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Script generato: %s (%d stati, %d causali)\n", outPath, len(defaultStatuses), len(defaultReasons))
}

func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
