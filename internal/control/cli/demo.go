package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inplace/config"
	"github.com/ja-he/inplace/internal/logbuf"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/session"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/submit"
)

type DemoCommand struct {
	PageFile      string `short:"f" long:"page" description:"Specify the page description file to edit" value-name:"<file>" required:"true"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

func (command *DemoCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &logbuf.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &logbuf.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	case "dark":
		theme = config.Dark
	default:
		theme = config.Dark
	}

	// set up dir per option
	baseDirPath := os.Getenv("INPLACE_HOME")
	if baseDirPath == "" {
		baseDirPath = os.Getenv("HOME") + "/.config/inplace"
	} else {
		baseDirPath = strings.TrimRight(baseDirPath, "/")
	}

	// read config from file
	yamlData, err := os.ReadFile(baseDirPath + "/" + "config.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't parse config data")
	}

	settings, err := session.SettingsFromConfig(configData.Editing)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't derive editing settings from config")
	}

	pageData, err := os.ReadFile(command.PageFile)
	if err != nil {
		return fmt.Errorf("cannot read page description file '%s' (%w)", command.PageFile, err)
	}
	pg, err := page.FromYAML(pageData)
	if err != nil {
		return fmt.Errorf("cannot parse page description file '%s' (%w)", command.PageFile, err)
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't construct stylesheet from config")
	}

	controller := NewController(pg, settings, submit.NewHTTPSubmitter(nil), stylesheet)

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
