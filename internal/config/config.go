// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"

	"github.com/staranto/slugger/internal/factory"
	"github.com/staranto/slugger/internal/slug"
)

// Name is both the config file stem and the name of the Array holding it,
// so "slugger.output" and "output" address the same key.
const Name = "slugger"

type Type struct {
	Source    string
	Namespace string
	Data      *slug.Array
}

var Config Type

func init() {
	_, _ = Load()
}

// Load reads slugger.yaml into a locked Array and makes it the package
// Config. The optional argument sets the namespace tried first by the
// getters.
func Load(namespace ...string) (Type, error) {
	ns := ""
	if len(namespace) > 0 {
		ns = namespace[0]
	}

	path, err := getConfigPath()
	if err != nil {
		Config = Type{Namespace: ns}
		return Config, err
	}

	// A config that fails to load never leaves the previous one in place.
	Config = Type{Namespace: ns}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	arr, err := factory.New(Name, data, true)
	if err != nil {
		return Config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	arr.Lock()

	Config = Type{
		Source:    path,
		Namespace: ns,
		Data:      arr,
	}

	return Config, nil
}

// errNotFound is returned by get when no candidate key resolves.
var errNotFound = errors.New("no valid path found")

// get resolves kspec, trying the namespaced key first.
func (cfg *Type) get(kspec string) (any, error) {
	if cfg.Data == nil {
		return nil, fmt.Errorf("%w: no config loaded", errNotFound)
	}

	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + slug.Separator + kspec, kspec}
	}

	for _, key := range candidateKeys {
		val, err := cfg.Data.Get(key)
		if err != nil {
			log.Debugf("config key %s: %v", key, err)
			continue
		}
		if val != nil {
			return val, nil
		}
	}

	return nil, fmt.Errorf("%w among: %v", errNotFound, candidateKeys)
}

func GetString(key string, defaultValue ...string) (string, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, errors.New("value is not a bool")
	}

	return b, nil
}

// GetStringSlice returns a YAML list of strings. Lists are held as Trees
// keyed "0", "1", ... so they are reassembled in index order. A single
// string is returned as a one element slice.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case slug.Tree:
		out := make([]string, len(v))
		for i := range out {
			s, ok := v[strconv.Itoa(i)].(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] is not a string", key, i)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, errors.New("value is not a string list")
	}
}

func getConfigPath() (string, error) {
	if p, ok := os.LookupEnv("SLUGGER_CFG"); ok && p != "" {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", p)
		}
		if info.IsDir() {
			return "", fmt.Errorf("SLUGGER_CFG points to a directory: %s", p)
		}
		return p, nil
	}

	var candidates []string = []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, Name+".yaml")
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", fmt.Errorf("no config file found in standard locations")
}
