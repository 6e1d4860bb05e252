package configparser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNoFilePath = errors.New("no file path provided")

// LoadYamlFile reads a YAML file and loads its leaves into the environment.
// Nested keys are joined with "_" and upper-cased: server.port -> SERVER_PORT.
// Variables that are already set are left untouched.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}

	return LoadYaml(data)
}

// LoadYaml is LoadYamlFile for an in-memory document.
func LoadYaml(data []byte) error {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("error reading YAML file: %w", err)
	}

	vars := make(map[string]string)
	flatten("", root, vars)

	for key, value := range vars {
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, expand(value)); err != nil {
			return fmt.Errorf("could not set env var %s: %w", key, err)
		}
	}

	return nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := strings.ToUpper(k)
		if prefix != "" {
			key = prefix + "_" + key
		}

		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
			// "key:" with no value does not represent a variable
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// expand handles the ${VAR:-default} substitution syntax.
func expand(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") || !strings.Contains(value, ":-") {
		return value
	}

	inner := value[2 : len(value)-1]
	parts := strings.SplitN(inner, ":-", 2)
	if envValue := os.Getenv(strings.TrimSpace(parts[0])); envValue != "" {
		return envValue
	}
	return strings.TrimSpace(parts[1])
}
