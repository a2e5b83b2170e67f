package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/akamensky/argparse"
	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/link89/f-ramune/framune"
	"github.com/link89/f-ramune/memchip"
	"github.com/link89/f-ramune/protocol"
	"github.com/link89/f-ramune/serialport"
)

var log, _ = logging.GetLogger("framune")

func main() {
	setupLogging()

	parser := argparse.NewParser("framune", "Inspect memory chips through an F-Ramune bridge")
	argPort := parser.String("p", "port", &argparse.Options{
		Required: true,
		Help:     "Serial port the F-Ramune is connected to (e.g. /dev/ttyUSB0)",
		Validate: func(args []string) error {
			if len(args) == 0 || args[0] == "" {
				return errors.New("no serial port specified")
			}
			return nil
		},
	})
	argBaud := parser.Int("b", "baud", &argparse.Options{
		Required: false,
		Default:  serialport.DefaultBaudRate,
		Help:     "Baud rate of the serial connection",
		Validate: func(args []string) error {
			if len(args) == 0 {
				return errors.New("no baud rate specified")
			}
			baud, err := strconv.Atoi(args[0])
			if err != nil || baud <= 0 {
				return errors.New(fmt.Sprintf("baud rate %s cannot be recognized", args[0]))
			}
			return nil
		},
	})
	argTimeout := parser.Int("t", "timeout-ms", &argparse.Options{
		Required: false,
		Default:  1000,
		Help:     "Read timeout in milliseconds",
		Validate: func(args []string) error {
			if len(args) == 0 {
				return errors.New("no timeout specified")
			}
			ms, err := strconv.Atoi(args[0])
			if err != nil || ms <= 0 {
				return errors.New(fmt.Sprintf("timeout %s cannot be recognized", args[0]))
			}
			return nil
		},
	})
	argAnalyze := parser.Flag("a", "analyze", &argparse.Options{
		Required: false,
		Help:     "Ask the bridge to analyze the attached chip",
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(2)
	}

	timeout := time.Duration(*argTimeout) * time.Millisecond
	if err := run(*argPort, *argBaud, timeout, *argAnalyze); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging() {
	logBackend := logging.NewLogBackend(os.Stderr, "", 0)

	if os.Getenv("DEBUG_PRINT") != "" {
		format := logging.MustStringFormatter(
			`%{color}%{shortfunc}:%{shortfile} %{level:.4s}%{color:reset} %{message}`,
		)
		backendFormatter := logging.NewBackendFormatter(logBackend, format)
		leveled := logging.AddModuleLevel(backendFormatter)
		leveled.SetLevel(logging.DEBUG, "")
		logging.SetBackend(leveled)
	} else {
		format := logging.MustStringFormatter(
			`%{level:.4s} %{message}`,
		)
		backendFormatter := logging.NewBackendFormatter(logBackend, format)
		leveled := logging.AddModuleLevel(backendFormatter)
		leveled.SetLevel(logging.INFO, "")
		logging.SetBackend(leveled)
	}
}

func run(portName string, baud int, timeout time.Duration, analyze bool) error {
	port, err := serialport.Open(portName,
		serialport.WithBaudRate(baud),
		serialport.WithReadTimeout(timeout),
	)
	if err != nil {
		return errors.Wrapf(err, "opening %s", portName)
	}

	session := framune.New(port)
	defer func() { _ = session.Close() }()

	ctx := context.Background()

	version, err := session.GetVersion(ctx)
	if err != nil {
		return errors.Wrap(err, "querying protocol version")
	}
	fmt.Printf("Connected F-Ramune protocol version: %d\n", version)

	if version != protocol.Version {
		log.Warningf("protocol version mismatch: host speaks version %d", protocol.Version)
	}

	if analyze {
		// An all-unknown request asks the bridge to determine everything
		// about the attached chip itself.
		chip, err := session.NegotiateChip(ctx, memchip.Chip{})
		if err != nil {
			return errors.Wrap(err, "analyzing chip")
		}

		fmt.Println("Chip analysis:")
		fmt.Printf("  operational:  %s\n", chip.IsOperational)
		fmt.Printf("  size (bytes): %s\n", chip.Size)
		fmt.Printf("  nonvolatile:  %s\n", chip.IsNonvolatile)
		fmt.Printf("  eeprom:       %s\n", chip.IsEEPROM)
	}

	return nil
}
