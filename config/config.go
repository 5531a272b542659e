/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config loads an actor system configuration from YAML.
//
// A configuration file looks like:
//
//	name: orders
//	port: 12321
//	idleTimeout: 30s
//	shutdownTimeout: 5s
//	mailboxCapacity: 1024
//	spawnRetries: 3
//	logLevel: info
//	metrics: true
//
// Missing keys keep their defaults. A zero mailboxCapacity selects the
// unbounded mailbox and an empty logLevel discards log output.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tochemey/simpleactors/actor"
	gerrors "github.com/tochemey/simpleactors/errors"
	"github.com/tochemey/simpleactors/internal/validation"
	"github.com/tochemey/simpleactors/log"
)

// Config represents the actor system configuration
type Config struct {
	// Name is the actor system name
	Name string `yaml:"name"`
	// Port is reserved for a future transport
	Port int `yaml:"port"`
	// IdleTimeout is how long a dispatcher waits on an empty mailbox
	IdleTimeout time.Duration `yaml:"idleTimeout"`
	// ShutdownTimeout bounds how long the system waits for its workers on shutdown
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	// MailboxCapacity sets the capacity of the default mailbox. Zero means unbounded.
	// The effective capacity is rounded up to a power of two, with a minimum of 2.
	MailboxCapacity int `yaml:"mailboxCapacity"`
	// SpawnRetries is the number of attempts made to construct an actor
	SpawnRetries int `yaml:"spawnRetries"`
	// LogLevel is one of debug, info, warn, error, fatal or panic
	LogLevel string `yaml:"logLevel"`
	// Metrics enables the OpenTelemetry runtime instruments
	Metrics bool `yaml:"metrics"`
}

// Default returns the configuration used for any key left unset
func Default() *Config {
	return &Config{
		Port:            actor.DefaultPort,
		IdleTimeout:     actor.DefaultIdleTimeout,
		ShutdownTimeout: actor.DefaultShutdownTimeout,
		SpawnRetries:    actor.DefaultSpawnRetries,
	}
}

// Load reads and parses the configuration file at path
func Load(path string) (*Config, error) {
	bytea, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(bytea)
}

// Parse decodes a YAML document on top of the default configuration
// and validates the result
func Parse(bytea []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(bytea, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks every setting and reports all the violations at once
func (c *Config) Validate() error {
	logLevelErr := c.checkLogLevel()
	return validation.New(validation.AllErrors()).
		AddValidator(validation.NewEmptyStringValidator("name", c.Name)).
		AddValidator(validation.NewRangeValidator("port", c.Port, 0, 65535, gerrors.ErrInvalidPort)).
		AddValidator(validation.NewRangeValidator("idleTimeout", c.IdleTimeout, time.Nanosecond, time.Duration(math.MaxInt64), gerrors.ErrInvalidTimeout)).
		AddValidator(validation.NewRangeValidator("shutdownTimeout", c.ShutdownTimeout, time.Nanosecond, time.Duration(math.MaxInt64), gerrors.ErrInvalidTimeout)).
		AddValidator(validation.NewRangeValidator("mailboxCapacity", c.MailboxCapacity, 0, math.MaxInt32, gerrors.ErrInvalidMailboxCapacity)).
		AddAssertion(c.SpawnRetries > 0, "spawnRetries must be greater than zero").
		AddAssertion(logLevelErr == nil, errMessage(logLevelErr)).
		Validate()
}

// Options converts the configuration into actor system options
func (c *Config) Options() []actor.Option {
	opts := []actor.Option{
		actor.WithPort(c.Port),
		actor.WithIdleTimeout(c.IdleTimeout),
		actor.WithShutdownTimeout(c.ShutdownTimeout),
		actor.WithSpawnRetries(c.SpawnRetries),
	}

	if c.MailboxCapacity > 0 {
		capacity := c.MailboxCapacity
		opts = append(opts, actor.WithDefaultMailbox(func() actor.Mailbox {
			return actor.NewBoundedMailbox(capacity)
		}))
	}

	if c.LogLevel != "" {
		// Validate has already rejected unknown levels
		level, _ := log.ParseLevel(c.LogLevel)
		opts = append(opts, actor.WithLogger(log.NewZap(level, os.Stdout)))
	}

	if c.Metrics {
		opts = append(opts, actor.WithMetric())
	}
	return opts
}

// NewActorSystem validates the configuration and creates the actor system.
// extra options are applied after the configured ones.
func NewActorSystem(cfg *Config, extra ...actor.Option) (*actor.ActorSystem, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return actor.NewActorSystem(cfg.Name, append(cfg.Options(), extra...)...)
}

func (c *Config) checkLogLevel() error {
	if c.LogLevel == "" {
		return nil
	}
	_, err := log.ParseLevel(c.LogLevel)
	return err
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
