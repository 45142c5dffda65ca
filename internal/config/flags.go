package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-server-url organization API base URL used by the client
//	-d server database DSN
//	-cache client snapshot cache file
//	-c/-config json file path with configs
//	-token bearer token issued by the auth service
//	-refresh-interval minimum interval between organization reads (e.g. "5s")
//	-worker-interval background refresh tick (e.g. "1m")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-log client log file path
//	-task client task file opened in the task form
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)

	var serverAddress NetAddress
	var serverURL string
	var databaseDSN string
	var cacheDSN string
	var jsonConfigPath string
	var token string
	var refreshInterval time.Duration
	var workerInterval time.Duration
	var requestTimeout time.Duration
	var logPath string
	var taskFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serverURL, "server-url", "", "Organization API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&cacheDSN, "cache", "", "Client snapshot cache file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Minimum interval between organization reads (e.g., 5s)")
	fs.DurationVar(&workerInterval, "worker-interval", 0, "Background refresh interval (e.g., 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logPath, "log", "", "Client log file path")
	fs.StringVar(&taskFile, "task", "", "Task file opened in the task form")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Token:           token,
			RefreshInterval: refreshInterval,
			LogPath:         logPath,
			TaskFile:        taskFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:      databaseDSN,
				CacheDSN: cacheDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{RefreshInterval: workerInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
