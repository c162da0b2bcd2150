package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/chanchavia/acquisitor/pkgs/acquisitor"
	"github.com/chanchavia/acquisitor/pkgs/clients/twitterclient"
	"github.com/chanchavia/acquisitor/pkgs/config"
	"github.com/chanchavia/acquisitor/pkgs/gazetteer"
	"github.com/chanchavia/acquisitor/pkgs/geo"
	"github.com/chanchavia/acquisitor/pkgs/logging"
	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/gookit/color"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Main Application Entry Point
////////////////////////////////////////////////////////////////////////////////

func main() {
	println("acquisitor - X account and post collector")

	////////////////////////////////////////////////////////////////////////////
	// Command Line Arguments Setup
	////////////////////////////////////////////////////////////////////////////
	var follHandle string
	var searchPhrase string
	var searchLang string
	var followArg string
	var unfollowArg string
	var confArg bool
	var isDebug bool

	flag.StringVar(&follHandle, "foll", "", "register every follower of the user specified by screen_name")
	flag.StringVar(&searchPhrase, "search", "", "register tweets matching the given phrase")
	flag.StringVar(&searchLang, "lang", "es", "restrict -search results to the given language")
	flag.StringVar(&followArg, "follow", "", "follow every user in the comma separated id list")
	flag.StringVar(&unfollowArg, "unfollow", "", "unfollow every user in the comma separated id list")
	flag.BoolVar(&confArg, "conf", false, "reconfigure")
	flag.BoolVar(&isDebug, "debug", false, "display debug message")
	flag.Parse()

	// context
	ctx, cancel := context.WithCancel(context.Background())

	var homepath string
	if runtime.GOOS == "windows" {
		homepath = os.Getenv("appdata")
	} else {
		homepath = os.Getenv("HOME")
	}
	if homepath == "" {
		panic("failed to get home path from env")
	}

	appRootPath := filepath.Join(homepath, ".acquisitor")
	confPath := filepath.Join(appRootPath, "conf.yaml")
	cliLogPath := filepath.Join(appRootPath, "client.log")
	logPath := filepath.Join(appRootPath, "acquisitor.log")
	dbPath := filepath.Join(appRootPath, "acquisitor.db")
	if err := os.MkdirAll(appRootPath, 0755); err != nil {
		log.Fatalln("failed to make app dir", err)
	}

	////////////////////////////////////////////////////////////////////////////
	// Logger Initialization
	////////////////////////////////////////////////////////////////////////////
	logFile, err := os.OpenFile(logPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln("failed to create log file:", err)
	}
	defer logFile.Close()
	logging.InitLogger(isDebug, logFile)

	////////////////////////////////////////////////////////////////////////////
	// Configuration Loading
	////////////////////////////////////////////////////////////////////////////
	conf, err := config.ReadConfig(confPath)
	if os.IsNotExist(err) || confArg {
		conf, err = config.PromptConfig(confPath)
		if err != nil {
			log.Fatalln("config failure with", err)
		}
	}
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}
	if confArg {
		log.Println("config done")
		return
	}
	log.Infoln("config is loaded")

	////////////////////////////////////////////////////////////////////////////
	// API Authentication
	////////////////////////////////////////////////////////////////////////////
	client := twitterclient.New()
	client.SetRateLimit()
	client.SetRequestRate(conf.RequestsPerSec)

	clientLogFile, err := os.OpenFile(cliLogPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln("failed to create log file:", err)
	}
	defer clientLogFile.Close()
	client.SetLogger(logging.NewFileLogger(clientLogFile))

	if err := client.Authenticate(ctx, conf.Credentials.ConsumerKey, conf.Credentials.ConsumerSecret); err != nil {
		log.Fatalln("failed to authenticate:", err)
	}
	log.Infoln("authenticated with", color.FgLightBlue.Render("application-only auth"))

	////////////////////////////////////////////////////////////////////////////
	// Database Connection
	////////////////////////////////////////////////////////////////////////////
	db, err := connectDatabase(dbPath)
	if err != nil {
		log.Fatalln("failed to connect to database:", err)
	}
	defer db.Close()
	log.Infoln("database is connected")

	// listen signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer close(sigChan)
	defer signal.Stop(sigChan)
	go func() {
		sig, ok := <-sigChan
		if ok {
			log.Warnln("[listener] caught signal:", sig)
			cancel()
		}
	}()

	////////////////////////////////////////////////////////////////////////////
	// Gazetteer Loading
	////////////////////////////////////////////////////////////////////////////
	var resolver *geo.Resolver
	if follHandle != "" || searchPhrase != "" {
		geoDataDir := conf.GeoDataDir
		if geoDataDir == "" {
			geoDataDir = filepath.Join(appRootPath, "geonames")
		}
		index, err := gazetteer.Load(ctx, geoDataDir)
		if err != nil {
			log.Fatalln("failed to load gazetteer:", err)
		}
		resolver = geo.NewResolver(index)
	}

	////////////////////////////////////////////////////////////////////////////
	// Main Job Execution
	////////////////////////////////////////////////////////////////////////////
	acq := acquisitor.New(acquisitor.Config{
		SearchPageSize:   conf.SearchPageSize,
		MaxSearchResults: conf.MaxSearchResults,
	}, db, client, resolver)

	if follHandle != "" {
		if err := acq.RegisterFollowers(ctx, follHandle); err != nil {
			log.Fatalln("failed to register followers:", err)
		}
	}

	if searchPhrase != "" {
		if err := acq.RegisterSearch(ctx, searchPhrase, searchLang); err != nil {
			log.Fatalln("failed to register search:", err)
		}
	}

	if followArg != "" {
		if err := acq.Follow(ctx, parseIds(followArg)); err != nil {
			log.Errorln("failed to follow:", err)
		}
	}

	if unfollowArg != "" {
		if err := acq.Unfollow(ctx, parseIds(unfollowArg)); err != nil {
			log.Errorln("failed to unfollow:", err)
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
// Utility Functions
////////////////////////////////////////////////////////////////////////////////

func connectDatabase(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&busy_timeout=2147483647", path)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	model.CreateTables(db)
	return db, nil
}

func parseIds(arg string) []uint64 {
	ids := make([]uint64, 0)
	for _, field := range strings.Split(arg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			log.Fatalln("invalid user id:", field)
		}
		ids = append(ids, id)
	}
	return ids
}
