// Command authority-replay loads a genesis authority configuration,
// replays a fixture of block headers through the rotation engine and
// prints the resulting committee for a requested block index. It stands
// in for the real beacon node's block processing pipeline, which is out
// of scope for the rotation engine itself.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/chainlabs/authority-rotation/beacon-chain/casper"
	"github.com/chainlabs/authority-rotation/internal/genesisconfig"
	"github.com/chainlabs/authority-rotation/internal/headerfixture"
	"github.com/chainlabs/authority-rotation/internal/logutil"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "main")

var (
	genesisFlag = &cli.StringFlag{
		Name:     "genesis",
		Usage:    "path to the genesis authority config YAML file",
		Required: true,
	}
	headersFlag = &cli.StringFlag{
		Name:     "headers",
		Usage:    "path to the JSON header fixture file to replay",
		Required: true,
	}
	indexFlag = &cli.Uint64Flag{
		Name:  "index",
		Usage: "block index to print the committee for",
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "if set, tee logs to this file in addition to stdout",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "logging verbosity (debug, info, warn, error)",
		Value: "info",
	}
)

func main() {
	app := cli.App{}
	app.Name = "authority-replay"
	app.Usage = "replay a header fixture through the authority rotation engine"
	app.Flags = []cli.Flag{genesisFlag, headersFlag, indexFlag, logFileFlag, verbosityFlag}
	app.Action = run

	defer func() {
		if x := recover(); x != nil {
			log.Errorf("runtime panic: %v\n%v", x, string(debug.Stack()))
			panic(x)
		}
	}()

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(verbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if logFileName := ctx.String(logFileFlag.Name); logFileName != "" {
		if err := logutil.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("failed to configure logging to disk")
		}
	}

	config, err := genesisconfig.Load(ctx.String(genesisFlag.Name))
	if err != nil {
		return err
	}

	store, err := headerfixture.Load(ctx.String(headersFlag.Name))
	if err != nil {
		return err
	}

	authority := casper.NewAuthority(config, store)
	log.WithField("currentEpoch", authority.CurrentEpoch()).Info("engine bootstrapped")

	index := ctx.Uint64(indexFlag.Name)
	committee, err := authority.GetAuthorities(index)
	if err != nil {
		return err
	}

	fmt.Printf("committee for index %d (%d seats):\n", index, len(committee))
	for _, seat := range committee {
		fmt.Printf("  %s\n", seat.AccountID)
	}
	return nil
}
