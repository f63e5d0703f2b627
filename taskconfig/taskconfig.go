// Copyright 2026 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package taskconfig loads the viewer's task configuration,
// which enumerates root MJCF documents to index.
package taskconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoTasks is returned when the config has no tasks entry.
var ErrNoTasks = errors.New("invalid config: missing 'tasks'")

// Config is a task configuration.
// Only the fields needed to locate model files are decoded.
type Config struct {
	ProjectName string `json:"project_name" yaml:"project_name"`
	Tasks       []Task `json:"tasks" yaml:"tasks"`

	dir string
}

// Task is a task entry.
type Task struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	ModelXML string   `json:"model_xml" yaml:"model_xml"`
	Policies []Policy `json:"policies" yaml:"policies"`
}

// Policy is a policy entry of a task.
// ModelXML, if set, overrides the task's model for the policy.
type Policy struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ModelXML string `json:"model_xml" yaml:"model_xml"`
}

// Load loads config from fname.
// Files with .yaml or .yml extension are parsed as YAML, others as JSON.
func Load(fname string) (*Config, error) {
	fname, err := filepath.Abs(fname)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	cfg, err := parse(buf, filepath.Ext(fname))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", fname, err)
	}
	cfg.dir = filepath.Dir(fname)
	return cfg, nil
}

func parse(buf []byte, ext string) (*Config, error) {
	cfg := &Config{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err := yaml.Unmarshal(buf, cfg)
		if err != nil {
			return nil, err
		}
	default:
		d := json.NewDecoder(bytes.NewReader(buf))
		err := d.Decode(cfg)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Tasks == nil {
		return nil, ErrNoTasks
	}
	return cfg, nil
}

// Dir returns the directory of the config file.
// Model paths are relative to it.
func (c *Config) Dir() string {
	return c.dir
}

// DisplayName returns the name used in logs.
func (t Task) DisplayName() string {
	switch {
	case t.Name != "":
		return t.Name
	case t.ID != "":
		return t.ID
	}
	return "Unnamed"
}

// Roots returns absolute paths of the task's model and of the policy
// model overrides, deduplicated, resolved against dir.
// It returns nil if the task has no model.
func (t Task) Roots(dir string) []string {
	if strings.TrimSpace(t.ModelXML) == "" {
		return nil
	}
	roots := []string{filepath.Join(dir, filepath.FromSlash(t.ModelXML))}
	for _, p := range t.Policies {
		if strings.TrimSpace(p.ModelXML) == "" {
			continue
		}
		root := filepath.Join(dir, filepath.FromSlash(p.ModelXML))
		if !slices.Contains(roots, root) {
			roots = append(roots, root)
		}
	}
	return roots
}
