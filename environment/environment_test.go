package environment

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/unicsmcr/hs_members/testutils"

	"github.com/stretchr/testify/assert"
)

func Test_NewEnv__should_return_correct_env(t *testing.T) {
	vars := map[string]string{
		Environment:   "testenv",
		Port:          "testport",
		MembersAPIURL: "http://members.test",
		ConfigDir:     "testconfigdir",
	}

	restoreVars := testutils.SetEnvVars(vars)
	defer restoreVars()

	expectedEnv := Env{
		vars: vars,
	}

	assert.Equal(t, expectedEnv, *NewEnv(zap.NewNop()))
}

func Test_Get__should_return_correct_value(t *testing.T) {
	env := &Env{
		vars: map[string]string{
			Environment:   "testenv",
			Port:          "testport",
			MembersAPIURL: "http://members.test",
			ConfigDir:     "testconfigdir",
		},
	}

	tests := []struct {
		name string
		want string
		args string
	}{
		{
			name: Environment,
			want: env.vars[Environment],
			args: Environment,
		},
		{
			name: Port,
			want: env.vars[Port],
			args: Port,
		},
		{
			name: MembersAPIURL,
			want: env.vars[MembersAPIURL],
			args: MembersAPIURL,
		},
		{
			name: ConfigDir,
			want: env.vars[ConfigDir],
			args: ConfigDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, env.Get(tt.args))
		})
	}
}

func Test_valueOfEnvVar__should_return_correct_value(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{"testkey": "testvalue"})
	defer restoreVars()

	value := valueOfEnvVar(zap.NewNop(), "testkey")
	assert.Equal(t, "testvalue", value)
}

func Test_valueOfEnvVar__should_return_empty_string_when_var_not_set(t *testing.T) {
	restoreVars := testutils.UnsetVars("testkey")
	defer restoreVars()

	value := valueOfEnvVar(zap.NewNop(), "testkey")
	assert.Equal(t, "", value)
}

func Test_loadDotEnv__should_not_override_vars_already_set(t *testing.T) {
	dir, err := ioutil.TempDir("", "hs_members_env")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, ".env")
	err = ioutil.WriteFile(path, []byte("HS_MEMBERS_TEST_A=fromfile\nHS_MEMBERS_TEST_B=fromfile\n"), 0600)
	assert.NoError(t, err)

	restoreVars := testutils.SetEnvVars(map[string]string{"HS_MEMBERS_TEST_A": "fromenv"})
	defer restoreVars()
	restoreUnset := testutils.UnsetVars("HS_MEMBERS_TEST_B")
	defer func() {
		os.Unsetenv("HS_MEMBERS_TEST_B")
		restoreUnset()
	}()

	dotEnv := loadDotEnv(path)

	assert.NoError(t, dotEnv.Err)
	assert.Equal(t, "fromenv", os.Getenv("HS_MEMBERS_TEST_A"))
	assert.Equal(t, "fromfile", os.Getenv("HS_MEMBERS_TEST_B"))
}

func Test_loadDotEnv__should_ignore_missing_file(t *testing.T) {
	dotEnv := loadDotEnv("does/not/exist/.env")

	assert.NoError(t, dotEnv.Err)
	assert.Equal(t, "does/not/exist/.env", dotEnv.Path)
}
