// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.

// files-stuff is a small toolbox around byte quantities and files:
// parsing and converting human byte sizes, listing files with a depth
// limit, hashing files block by block and resolving file ownership.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/crap0101/files-stuff/cli"
	"github.com/crap0101/files-stuff/fs"
	"github.com/crap0101/files-stuff/guid"
	fsio "github.com/crap0101/files-stuff/io"
	"github.com/crap0101/files-stuff/unit"
)

type rootCLI struct {
	cli.Profiling

	Verbose bool   `short:"v" help:"Enable debug logging."`
	Config  string `short:"c" help:"Named config profile to load instead of the current one."`

	Bytes bytesCmd `cmd:"" help:"Parse, convert and print byte quantities."`
	Find  findCmd  `cmd:"" help:"List regular files under the given paths."`
	Hash  hashCmd  `cmd:"" help:"Digest files block by block."`
	Owner ownerCmd `cmd:"" help:"Resolve user and group ids to names and back."`
}

// appContext carries what every subcommand needs.
type appContext struct {
	ctx    context.Context
	config cli.Config
}

type bytesCmd struct {
	Value    string `arg:"" help:"Quantity to parse, e.g. '1.5GiB' or '1024'."`
	Unit     string `short:"u" help:"Unit the value is expressed in (the value must not carry its own)."`
	Standard string `short:"s" help:"Standard of the value: SI, IEC or MEM. Defaults to the configured one."`
	To       string `help:"Convert to this standard."`
	ToUnit   string `help:"Convert to this unit (defaults to the nearest tier)."`
}

func (c *bytesCmd) Run(app *appContext) error {
	std, err := app.standard(c.Standard)
	if err != nil {
		return err
	}

	var q unit.Quantity
	if c.Unit != "" {
		q, err = unit.ParseInUnit(c.Value, c.Unit, std)
	} else {
		q, err = unit.Parse(c.Value, std)
	}
	if err != nil {
		return err
	}

	if c.To != "" || c.ToUnit != "" {
		target := std
		if c.To != "" {
			if target, err = unit.StandardByName(c.To); err != nil {
				return err
			}
		}
		if q, err = q.Convert(target, c.ToUnit); err != nil {
			return err
		}
	}

	fmt.Println(q)
	return nil
}

type findCmd struct {
	Paths   []string `arg:"" help:"List regular files under each of these paths."`
	Depth   int      `short:"d" default:"-1" help:"Descend N levels of subdirs, level 0 being the given path; negative descends as deep as possible."`
	Pattern []string `short:"p" help:"Keep only names matching any of these shell patterns."`
	Regexp  []string `short:"r" help:"Keep only paths matching any of these regular expressions."`
}

func (c *findCmd) Run(app *appContext) error {
	regexps := make([]*regexp.Regexp, 0, len(c.Regexp))
	for _, expr := range c.Regexp {
		re, err := regexp.Compile(expr)
		if err != nil {
			return err
		}
		regexps = append(regexps, re)
	}

	out := fsio.NewBufferWriteCloser(os.Stdout)
	for _, path := range c.Paths {
		expanded, err := fs.ExpandPath(path)
		if err != nil {
			return err
		}

		files, err := fs.Find(app.ctx, expanded, c.Depth)
		if err != nil {
			return err
		}
		for _, file := range files {
			if len(c.Pattern) > 0 && !fs.MatchAnyPattern(filepath.Base(file), c.Pattern) {
				continue
			}
			if len(c.Regexp) > 0 && !fs.MatchAnyRegexp(file, regexps) {
				continue
			}
			fmt.Fprintln(out, file)
		}
	}
	return out.Close()
}

type hashCmd struct {
	Paths     []string `arg:"" help:"Files to digest."`
	Algo      string   `short:"a" help:"Digest algorithm: md5, sha1, sha256 or sha512. Defaults to the configured one."`
	BlockSize string   `short:"b" help:"Read granularity as a quantity string, e.g. 64KiB."`
	Workers   int      `short:"w" default:"4" help:"Digest at most N files in parallel."`
}

func (c *hashCmd) Run(app *appContext) error {
	algo := c.Algo
	if algo == "" {
		algo = app.config.HashAlgo
	}

	blockSize, err := app.config.ResolveBlockSize()
	if err != nil {
		return err
	}
	if c.BlockSize != "" {
		std, err := app.standard("")
		if err != nil {
			return err
		}
		q, err := unit.Parse(c.BlockSize, std)
		if err != nil {
			return err
		}
		blockSize = int(q.Bytes())
	}

	paths := fs.PruneRegular(app.ctx, c.Paths)
	digests, err := fs.HashFiles(app.ctx, paths, algo, blockSize, c.Workers)

	sorted := make([]string, 0, len(digests))
	for path := range digests {
		sorted = append(sorted, path)
	}
	sort.Strings(sorted)

	out := fsio.NewBufferWriteCloser(os.Stdout)
	for _, path := range sorted {
		fmt.Fprintf(out, "%s  %s\n", digests[path], path)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

type ownerCmd struct {
	UID      []int    `help:"Resolve these uids to usernames."`
	GID      []int    `help:"Resolve these gids to group names."`
	User     []string `help:"Resolve these usernames to uids."`
	Group    []string `help:"Resolve these group names to gids."`
	GroupsOf []string `help:"List the groups each of these usernames belongs to."`
}

func (c *ownerCmd) Run(app *appContext) error {
	logger := zerolog.Ctx(app.ctx)

	for _, uid := range c.UID {
		if name, err := guid.NameFromUID(uid); err != nil {
			logger.Warn().Err(err).Msg("Lookup failed")
		} else {
			fmt.Printf("%d %s\n", uid, name)
		}
	}
	for _, gid := range c.GID {
		if name, err := guid.NameFromGID(gid); err != nil {
			logger.Warn().Err(err).Msg("Lookup failed")
		} else {
			fmt.Printf("%d %s\n", gid, name)
		}
	}
	for _, name := range c.User {
		if uid, err := guid.UIDFromName(name); err != nil {
			logger.Warn().Err(err).Msg("Lookup failed")
		} else {
			fmt.Printf("%s %d\n", name, uid)
		}
	}
	for _, name := range c.Group {
		if gid, err := guid.GIDFromName(name); err != nil {
			logger.Warn().Err(err).Msg("Lookup failed")
		} else {
			fmt.Printf("%s %d\n", name, gid)
		}
	}
	for _, name := range c.GroupsOf {
		if groups, err := guid.GroupsOf(name); err != nil {
			logger.Warn().Err(err).Msg("Lookup failed")
		} else {
			fmt.Printf("%s %v\n", name, groups)
		}
	}
	return nil
}

// standard resolves an explicit standard name, falling back to the
// configured one.
func (app *appContext) standard(name string) (*unit.Standard, error) {
	if name != "" {
		return unit.StandardByName(name)
	}
	return app.config.ResolveStandard()
}

// loadConfig loads the selected (or current) profile, degrading to the
// built-in defaults when none is stored.
func loadConfig(ctx context.Context, profile string) cli.Config {
	logger := zerolog.Ctx(ctx)

	dir, err := cli.DefaultDir()
	if err != nil {
		logger.Debug().Err(err).Msg("No config dir, using defaults")
		return cli.DefaultConfig()
	}
	configDir, err := cli.NewConfigDir(dir, &cli.ConfigJSONLoader{})
	if err != nil {
		logger.Debug().Err(err).Msg("No config dir, using defaults")
		return cli.DefaultConfig()
	}

	var loaded interface{}
	if profile != "" {
		loaded, err = configDir.Get(profile)
	} else {
		_, loaded, err = configDir.Current()
	}
	if err != nil {
		logger.Debug().Err(err).Msg("No stored config, using defaults")
		return cli.DefaultConfig()
	}

	config, ok := loaded.(cli.Config)
	if !ok {
		logger.Warn().Msg("Malformed stored config, using defaults")
		return cli.DefaultConfig()
	}
	return config
}

func main() {
	var root rootCLI
	kctx := kong.Parse(&root,
		kong.Name("files-stuff"),
		kong.Description("Byte quantities and file utilities."),
		kong.UsageOnError(),
	)

	stopProfiling := root.Profiling.Start()
	defer stopProfiling()

	level := zerolog.WarnLevel
	if root.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	err := kctx.Run(&appContext{ctx: ctx, config: loadConfig(ctx, root.Config)})
	kctx.FatalIfErrorf(err)
}
