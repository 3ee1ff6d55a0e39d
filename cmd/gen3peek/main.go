package main

import (
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gen3peek"
	"gen3peek/party"
	"gen3peek/profile"

	"github.com/urfave/cli/v2"
	xdraw "golang.org/x/image/draw"
)

const defaultDB = "gen3peek.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func writeSprite(pk *gen3peek.Peeker, species uint16, gray bool, scale int, dir string) error {
	sp, err := pk.Sprite(species, gray)
	if err != nil {
		return err
	}

	out := image.Image(sp.RGBA())
	if scale > 1 {
		b := out.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), out, b, xdraw.Src, nil)
		out = dst
	}

	name := fmt.Sprintf("%03d.png", species)
	if gray {
		name = fmt.Sprintf("%03d-gray.png", species)
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, out)
}

func printRecord(pk *gen3peek.Peeker, i int, rec *party.Record) {
	if rec == nil {
		fmt.Printf("%d: (empty)\n", i+1)
		return
	}

	nature := gen3peek.Nature(rec.Nature)
	fmt.Printf("%d: %s (%s) Lv.%d %s HP %d/%d", i+1, rec.Nickname, rec.SpeciesName, rec.Level, nature, rec.CurHP, rec.MaxHP)
	if status := party.StatusName(rec.Status); status != "" {
		fmt.Printf(" [%s]", status)
	}
	fmt.Println()

	moves := make([]string, 0, len(rec.Moves))
	for j, move := range rec.Moves {
		if move == 0 {
			continue
		}
		moves = append(moves, fmt.Sprintf("%s (%d PP)", pk.MoveName(move), rec.PP[j]))
	}
	fmt.Printf("   %s\n", strings.Join(moves, ", "))
}

func main() {
	app := cli.NewApp()

	app.Name = "gen3peek"
	app.Usage = "Inspect third-generation Game Boy Advance cartridges and memory dumps"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GEN3PEEK_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Show cartridge header and detected profile",
			Description: "",
			ArgsUsage:   "ROM",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				rom, err := os.ReadFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				p, matched := profile.Detect(rom)

				fmt.Printf("Title:    %s\n", profile.Title(rom))
				fmt.Printf("Code:     %s\n", profile.GameCode(rom))
				fmt.Printf("Revision: %d\n", profile.Revision(rom))
				fmt.Printf("CRC-32:   %08X\n", crc32.ChecksumIEEE(rom))
				if matched {
					fmt.Printf("Profile:  %s\n", p.Name)
				} else {
					fmt.Printf("Profile:  %s (fallback, unrecognized ROM)\n", p.Name)
				}

				return nil
			},
		},
		{
			Name:        "sprites",
			Usage:       "Decode front sprites to PNG files",
			Description: "",
			ArgsUsage:   "ROM",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "out",
					Value: ".",
					Usage: "output directory",
				},
				&cli.IntFlag{
					Name:  "species",
					Usage: "decode a single species instead of all of them",
				},
				&cli.BoolFlag{
					Name:  "gray",
					Usage: "decode the grayscale fainted rendering",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "integer upscaling factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				rom, err := os.ReadFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				logger := newLogger(c)
				pk := gen3peek.New(rom, nil, nil, logger)

				if species := c.Int("species"); species > 0 {
					if err := writeSprite(pk, uint16(species), c.Bool("gray"), c.Int("scale"), c.String("out")); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				}

				for species := uint16(1); species < pk.Profile().SpeciesCount; species++ {
					if err := writeSprite(pk, species, c.Bool("gray"), c.Int("scale"), c.String("out")); err != nil {
						logger.Printf("species %d: %v\n", species, err)
					}
				}

				return nil
			},
		},
		{
			Name:        "party",
			Usage:       "Decode the live party out of a working-RAM dump",
			Description: "",
			ArgsUsage:   "DUMP",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "rom",
					Usage:    "cartridge image the dump was taken from",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				rom, err := os.ReadFile(c.String("rom"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				wram, err := os.ReadFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				pk := gen3peek.New(rom, wram, nil, newLogger(c))

				need := uint32(pk.Profile().PartyData) + gen3peek.MaxParty*party.RecordSize
				if uint32(len(wram)) < need {
					return cli.NewExitError(fmt.Errorf("dump too small: need at least %d bytes, got %d", need, len(wram)), 1)
				}

				for i, rec := range pk.Party() {
					printRecord(pk, i, rec)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and catalog cartridge images",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := gen3peek.OpenDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				s := gen3peek.NewScanner(db, newLogger(c))

				if err := s.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
