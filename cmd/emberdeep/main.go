package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"emberdeep/internal/config"
	"emberdeep/internal/datastore"
	"emberdeep/internal/dice"
	"emberdeep/internal/encounter"
	"emberdeep/internal/loot"
	"emberdeep/internal/quest"
	"emberdeep/internal/rng"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(0)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warn: .env: %v", err)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "roll":
		err = cmdRoll(os.Args[2:])
	case "encounter":
		err = cmdEncounter(os.Args[2:])
	case "quest":
		err = cmdQuest(os.Args[2:])
	case "tables":
		err = cmdTables(os.Args[2:])
	case "saves":
		err = cmdSaves(os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app holds everything a subcommand needs after flags are resolved.
type app struct {
	cfg   *config.Config
	src   rng.Source
	store *datastore.Store
}

func addCommonFlags(fs *flag.FlagSet) (configPath *string, seed *int64, dataDir *string) {
	configPath = fs.String("config", "", "path to a YAML config file (built-in tables when empty)")
	seed = fs.Int64("seed", 0, "seed the random source for reproducible output")
	dataDir = fs.String("data", "", "save-data directory (overrides config)")
	return configPath, seed, dataDir
}

// newApp resolves configuration in precedence order: flags over environment
// over config file over built-in defaults.
func newApp(fs *flag.FlagSet, configPath string, seed *int64, dataDir string) (*app, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}
	if err := config.FromEnv(cfg); err != nil {
		return nil, err
	}

	seedSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if seedSet {
		cfg.SeededRNG = config.SeededRNG{Enabled: true, Seed: *seed}
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	var src rng.Source
	if cfg.SeededRNG.Enabled {
		src = rng.New(cfg.SeededRNG.Seed)
	} else {
		src = rng.NewFromTime()
	}

	store, err := datastore.New(cfg.DataDir, log.Default())
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, src: src, store: store}, nil
}

func cmdRoll(args []string) error {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	configPath, seed, dataDir := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: emberdeep roll <NdS+M>")
	}

	a, err := newApp(fs, *configPath, seed, *dataDir)
	if err != nil {
		return err
	}

	numDice, sides, modifier, err := dice.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	result, err := dice.Roll(a.src, numDice, sides, modifier)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func cmdEncounter(args []string) error {
	fs := flag.NewFlagSet("encounter", flag.ContinueOnError)
	configPath, seed, dataDir := addCommonFlags(fs)
	level := fs.Int("level", 1, "character level the encounter scales from")
	location := fs.String("location", "", "location type (configured default when empty)")
	count := fs.Int("count", 1, "number of encounters to generate")
	save := fs.Bool("save", false, "persist each encounter to the data directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(fs, *configPath, seed, *dataDir)
	if err != nil {
		return err
	}

	lootGen := loot.NewGenerator(a.cfg.Loot, a.src)
	encGen := encounter.NewGenerator(a.cfg.Encounters, lootGen, a.src)

	for i := 0; i < *count; i++ {
		enemy := encGen.Generate(*level, *location)
		if err := printJSON(enemy); err != nil {
			return err
		}
		if *save {
			key := "encounter_" + uuid.NewString()
			if !a.store.Save(key, enemy) {
				return fmt.Errorf("could not save %s", key)
			}
			fmt.Fprintln(os.Stderr, "saved:", key)
		}
	}
	return nil
}

func cmdQuest(args []string) error {
	fs := flag.NewFlagSet("quest", flag.ContinueOnError)
	configPath, seed, dataDir := addCommonFlags(fs)
	location := fs.String("location", "Oakvale", "place name woven into the quest text")
	difficulty := fs.Int("difficulty", 1, "quest difficulty (scales rewards)")
	count := fs.Int("count", 1, "number of quests to generate")
	save := fs.Bool("save", false, "persist each quest to the data directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(fs, *configPath, seed, *dataDir)
	if err != nil {
		return err
	}

	questGen := quest.NewGenerator(a.cfg.Quests, a.src)

	for i := 0; i < *count; i++ {
		q := questGen.Generate(*location, *difficulty)
		if err := printJSON(q); err != nil {
			return err
		}
		if *save {
			key := "quest_" + uuid.NewString()
			if !a.store.Save(key, q) {
				return fmt.Errorf("could not save %s", key)
			}
			fmt.Fprintln(os.Stderr, "saved:", key)
		}
	}
	return nil
}

// cmdTables prints the effective generation tables after config file and
// environment overrides are applied.
func cmdTables(args []string) error {
	fs := flag.NewFlagSet("tables", flag.ContinueOnError)
	configPath, seed, dataDir := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(fs, *configPath, seed, *dataDir)
	if err != nil {
		return err
	}
	return printJSON(a.cfg)
}

func cmdSaves(args []string) error {
	fs := flag.NewFlagSet("saves", flag.ContinueOnError)
	configPath, seed, dataDir := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(fs, *configPath, seed, *dataDir)
	if err != nil {
		return err
	}
	for _, key := range a.store.List() {
		fmt.Println(key)
	}
	return nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  emberdeep roll <NdS+M>            roll a dice expression, e.g. 2d6+3")
	fmt.Println("  emberdeep encounter [flags]       generate enemies (-level -location -count -save)")
	fmt.Println("  emberdeep quest [flags]           generate quests (-location -difficulty -count -save)")
	fmt.Println("  emberdeep tables [flags]          print the effective generation tables")
	fmt.Println("  emberdeep saves [flags]           list saved encounter/quest keys")
	fmt.Println()
	fmt.Println("common flags: -config <file> -seed <n> -data <dir>")
}
