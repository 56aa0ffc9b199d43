package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const propertiesConfig = `
curator.database.name=gk_central
curator.database.password=s3cret
release.database.name=release_current
release.database.host=release.reactome.org
log_dir=/var/log/releasefetch
person_id=140537
sources.uniprot.url=https://rest.uniprot.org/uniprotkb/stream?format=tsv
sources.uniprot.destination=/tmp/releasefetch/uniprot.tsv
sources.uniprot.max_age=24h
sources.uniprot.retries=2
sources.orphanet.url=ftp://ftp.orphadata.org/en_product6.xml
sources.orphanet.destination=/tmp/releasefetch/orphanet.xml
sources.orphanet.passive_ftp=true
sources.orphanet.timeout=45s
sources.cosmic.url=https://cancer.sanger.ac.uk/cosmic/file_download/GRCh38/cosmic/v99/CosmicMutantExport.tsv.gz
sources.cosmic.destination=/tmp/releasefetch/cosmic.tsv.gz
sources.cosmic.kind=COSMIC
sources.cosmic.username=curator@reactome.org
sources.cosmic.password=hunter2
`

func TestLoad_Properties(t *testing.T) {
	cfg, err := Load(writeConfig(t, "releasefetch.properties", propertiesConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"cosmic", "orphanet", "uniprot"}, cfg.SourceNames())

	uniprot := cfg.Sources["uniprot"]
	assert.Equal(t, "https://rest.uniprot.org/uniprotkb/stream?format=tsv", uniprot.URL)
	assert.Equal(t, 24*time.Hour, uniprot.MaxAge)
	require.NotNil(t, uniprot.Retries)
	assert.Equal(t, 2, *uniprot.Retries)
	assert.Nil(t, cfg.Sources["orphanet"].Retries)
	assert.Equal(t, KindFile, uniprot.Kind)

	orphanet := cfg.Sources["orphanet"]
	assert.True(t, orphanet.PassiveFTP)
	assert.Equal(t, 45*time.Second, orphanet.Timeout)

	cosmic := cfg.Sources["cosmic"]
	assert.Equal(t, KindCOSMIC, cosmic.Kind)
	assert.Equal(t, "curator@reactome.org", cosmic.Username)
	assert.Equal(t, "hunter2", cosmic.Password)

	assert.Equal(t, "gk_central", cfg.Curator.Database.Name)
	assert.Equal(t, "s3cret", cfg.Curator.Database.Password)
	assert.Equal(t, "localhost", cfg.Curator.Database.Host)
	assert.Equal(t, "release_current", cfg.Release.Database.Name)
	assert.Equal(t, "release.reactome.org", cfg.Release.Database.Host)
	assert.Equal(t, "root", cfg.Release.Database.Password)
	assert.Equal(t, int64(140537), cfg.PersonID)
	assert.Equal(t, "/var/log/releasefetch", cfg.LogDir)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	for _, db := range []DatabaseSection{cfg.Curator, cfg.Release} {
		assert.Equal(t, "localhost", db.Database.Host)
		assert.Equal(t, 3306, db.Database.Port)
		assert.Equal(t, "root", db.Database.User)
		assert.Equal(t, "root", db.Database.Password)
		assert.Empty(t, db.Database.Name)
	}
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogDir)
	assert.Empty(t, cfg.Sources)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "releasefetch.yaml", `
workers: 2
sources:
  hmdb:
    url: https://hmdb.ca/system/downloads/current/hmdb_metabolites.zip
    destination: /tmp/hmdb.zip
    max_age: 168h
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 168*time.Hour, cfg.Sources["hmdb"].MaxAge)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("RELEASEFETCH_CURATOR_DATABASE_HOST", "db.reactome.org")
	t.Setenv("RELEASEFETCH_RELEASE_DATABASE_PORT", "3307")
	t.Setenv("RELEASEFETCH_WORKERS", "8")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "db.reactome.org", cfg.Curator.Database.Host)
	assert.Equal(t, "localhost", cfg.Release.Database.Host)
	assert.Equal(t, 3307, cfg.Release.Database.Port)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "missing destination",
			content: "sources.kegg.url=https://rest.kegg.jp/list/pathway\n",
			check: func(t *testing.T, err error) {
				var notPresent *PropertyNotPresentError
				require.ErrorAs(t, err, &notPresent)
				assert.Equal(t, "sources.kegg.destination", notPresent.Key)
			},
		},
		{
			name:    "blank url",
			content: "sources.kegg.url=  \nsources.kegg.destination=/tmp/kegg\n",
			check: func(t *testing.T, err error) {
				var noValue *PropertyHasNoValueError
				require.ErrorAs(t, err, &noValue)
				assert.Equal(t, "sources.kegg.url", noValue.Key)
			},
		},
		{
			name:    "unknown kind",
			content: "sources.kegg.url=https://x\nsources.kegg.destination=/tmp/kegg\nsources.kegg.kind=s3\n",
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, `unknown kind "s3"`)
			},
		},
		{
			name:    "bad duration",
			content: "sources.kegg.url=https://x\nsources.kegg.destination=/tmp/kegg\nsources.kegg.max_age=forever\n",
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "unmarshal")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "bad.properties", tt.content))
			require.Error(t, err)
			tt.check(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestMandatory(t *testing.T) {
	v := New()
	v.Set("release.number", "88")
	v.Set("release.blank", " ")

	value, err := Mandatory(v, "release.number")
	require.NoError(t, err)
	assert.Equal(t, "88", value)

	_, err = Mandatory(v, "release.blank")
	assert.ErrorIs(t, err, ErrProperty)
	assert.IsType(t, &PropertyHasNoValueError{}, err)

	_, err = Mandatory(v, "release.missing")
	assert.ErrorIs(t, err, ErrProperty)
	assert.IsType(t, &PropertyNotPresentError{}, err)
	assert.EqualError(t, err, "the property release.missing is not in this set of properties")
}

func TestConfig_Masked(t *testing.T) {
	cfg := &Config{
		Sources: map[string]Source{
			"cosmic":  {Password: "hunter2"},
			"uniprot": {},
		},
	}
	cfg.Curator.Database.Password = "root"

	masked := cfg.Masked()
	assert.Equal(t, maskedPassword, masked.Curator.Database.Password)
	assert.Empty(t, masked.Release.Database.Password)
	assert.Equal(t, maskedPassword, masked.Sources["cosmic"].Password)
	assert.Empty(t, masked.Sources["uniprot"].Password)

	assert.Equal(t, "root", cfg.Curator.Database.Password)
	assert.Equal(t, "hunter2", cfg.Sources["cosmic"].Password)
}

func TestConfig_Database(t *testing.T) {
	cfg := &Config{}
	cfg.Curator.Database.Name = "gk_central"
	cfg.Release.Database.Name = "release_current"

	curator, err := cfg.Database(PrefixCurator)
	require.NoError(t, err)
	assert.Equal(t, "gk_central", curator.Name)

	release, err := cfg.Database(PrefixRelease)
	require.NoError(t, err)
	assert.Equal(t, "release_current", release.Name)

	_, err = cfg.Database("stable_id")
	assert.EqualError(t, err, `unknown database "stable_id": use curator or release`)
}
