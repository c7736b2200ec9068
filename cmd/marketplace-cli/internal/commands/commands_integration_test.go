//go:build integration
// +build integration

package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airportsCSV = `iata,icao,name,city,country,lat,lon
DXB,OMDB,Dubai International Airport,Dubai,United Arab Emirates,25.2532,55.3657
AUH,OMAA,Zayed International Airport,Abu Dhabi,United Arab Emirates,24.4330,54.6511
bad,row
`

func writeConfig(t *testing.T, dbPath string) string {
	t.Helper()

	yaml := fmt.Sprintf(`port: "8080"
database:
  type: sqlite
  dsn: %q
logger:
  log_level: error
  log_type: console
auth:
  jwt_secret: "cli-integration-secret-0123456789abcdef"
storage:
  type: local
  local_root: %q
billing:
  currency: AED
`, dbPath, t.TempDir())
	return testutil.CreateTestFile(t, "rest-app.yaml", []byte(yaml))
}

func execute(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd := newRootCmd()
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestCLI_EndToEnd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "marketplace.db")
	cfgPath := writeConfig(t, dbPath)
	csvPath := testutil.CreateTestFile(t, "airports.csv", []byte(airportsCSV))

	require.NoError(t, execute(t, "--config", cfgPath, "migrate"))
	require.NoError(t, execute(t, "--config", cfgPath, "seed-airports", "--file", csvPath))
	require.NoError(t, execute(t, "--config", cfgPath, "create-admin", "--email", "root@marketplace.example", "--password", "s3cret-pass"))
	require.NoError(t, execute(t, "--config", cfgPath, "billing", "generate-recurring"))
	require.NoError(t, execute(t, "--config", cfgPath, "billing", "mark-overdue"))

	// a second admin with the same email is a conflict
	assert.Error(t, execute(t, "--config", cfgPath, "create-admin", "--email", "root@marketplace.example", "--password", "s3cret-pass"))

	log := testutil.SetupTestLogger(t)
	db, err := persistence.NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: dbPath}, log)
	require.NoError(t, err)
	defer func() { _ = persistence.CloseDB(db) }()

	repos, err := persistence.NewRepositories(db, log)
	require.NoError(t, err)

	airport, err := repos.Airports.GetByIATA(context.Background(), "AUH")
	require.NoError(t, err)
	assert.Equal(t, "Abu Dhabi", airport.City)

	admin, err := repos.Users.GetByEmail(context.Background(), "root@marketplace.example")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
}

func TestCLI_MissingConfigSecret(t *testing.T) {
	t.Setenv("MARKETPLACE_AUTH_JWT_SECRET", "")
	cfgPath := testutil.CreateTestFile(t, "empty.yaml", []byte("port: \"8080\"\n"))

	err := execute(t, "--config", cfgPath, "migrate")
	assert.Error(t, err)
}
