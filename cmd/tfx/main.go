/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command tfx lists the supported temporal kinds and samples values from
// them, optionally shaped by a YAML configuration file.
package main

import (
	"math/rand/v2"
	"os"

	"github.com/davecgh/go-spew/spew"
	fmt "github.com/jhunt/go-ansi"
	"github.com/jhunt/go-cli"
	env "github.com/jhunt/go-envirotron"
	"github.com/jhunt/go-log"

	"dirpx.dev/tfx/apis"
	"dirpx.dev/tfx/config"
	"dirpx.dev/tfx/generator"
	"dirpx.dev/tfx/introspector"
	"dirpx.dev/tfx/provider"
	"dirpx.dev/tfx/resolver"
)

var Version = ""

var opts struct {
	Help    bool   `cli:"-h, --help"`
	Version bool   `cli:"-v, --version"`
	Debug   bool   `cli:"-D, --debug"  env:"TFX_DEBUG"`
	Config  string `cli:"-c, --config" env:"TFX_CONFIG"`

	Kinds  struct{} `cli:"kinds"`
	Sample struct {
		Count  int  `cli:"-n, --count"`
		Seed   int  `cli:"-s, --seed"`
		Past   bool `cli:"--past"`
		Future bool `cli:"--future"`
	} `cli:"sample"`
	Dump struct{} `cli:"dump"`
}

func main() {
	opts.Sample.Count = 1
	env.Override(&opts)

	command, args, err := cli.Parse(&opts)
	bail(err)

	if opts.Version {
		if Version == "" {
			fmt.Printf("tfx (development)\n")
		} else {
			fmt.Printf("tfx v%s\n", Version)
		}
		os.Exit(0)
	}
	if opts.Help || command == "" {
		usage()
		os.Exit(0)
	}

	file, err := loadConfig(opts.Config)
	bail(err)

	level := file.Log.Level
	if opts.Debug {
		level = "debug"
	}
	log.SetupLogging(log.LogConfig{Type: "console", Level: level})

	prv := provider.FromFile(file)
	bail(prv.Validate())
	in := introspector.New(prv,
		resolver.Chain(resolver.FromFile(file), resolver.Constrained(nil)),
		introspector.WithConfig(file.Config()))

	switch command {
	case "kinds":
		for _, k := range in.Registry().Kinds() {
			fmt.Printf("@G{%-18s} %v\n", k, k.Type())
		}

	case "sample":
		bail(sample(in, args))

	case "dump":
		for _, k := range in.Registry().Kinds() {
			res := in.Introspect(generator.NewContext(k.Type()))
			fmt.Printf("@C{%s}\n", k)
			spew.Fdump(os.Stdout, res.Arbitrary())
		}

	default:
		bail(fmt.Errorf("unrecognized command '%s'", command))
	}
}

func sample(in *introspector.Introspector, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("sample: missing KIND argument (try `tfx kinds`)")
	}

	seed := uint64(opts.Sample.Seed)
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debugf("sampling %d value(s) per kind with seed %d", opts.Sample.Count, seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	var cs apis.Constraints
	cs.Past, cs.Future = opts.Sample.Past, opts.Sample.Future

	for _, name := range args {
		k, err := apis.ParseKind(name)
		if err != nil {
			return err
		}
		res := in.Introspect(generator.NewContext(k.Type(), generator.WithConstraints(cs)))
		for i := 0; i < opts.Sample.Count; i++ {
			v, _ := res.Sample(rng)
			fmt.Printf("%s\t%v\n", k, v)
		}
	}
	return nil
}

func loadConfig(path string) (*config.File, error) {
	if path == "" {
		return config.Parse(nil)
	}
	log.Infof("loading configuration from %s", path)
	return config.LoadFile(path)
}

func usage() {
	fmt.Printf("USAGE: @G{tfx} [OPTIONS] COMMAND [ARGUMENTS]\n")
	fmt.Printf("\n")
	fmt.Printf("@B{Global options:}\n")
	fmt.Printf("  -h, --help     Show this help screen.\n")
	fmt.Printf("  -v, --version  Print the version and exit.\n")
	fmt.Printf("  -D, --debug    Enable debug logging. (@W{$TFX_DEBUG})\n")
	fmt.Printf("  -c, --config   YAML configuration file. (@W{$TFX_CONFIG})\n")
	fmt.Printf("\n")
	fmt.Printf("@B{Commands:}\n")
	fmt.Printf("  kinds                       List supported temporal kinds.\n")
	fmt.Printf("  sample KIND... [-n N] [-s SEED] [--past|--future]\n")
	fmt.Printf("                              Print N generated values per kind.\n")
	fmt.Printf("  dump                        Dump the resolved strategy of every kind.\n")
}

func bail(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "@R{!!! %s}\n", err)
		os.Exit(1)
	}
}
