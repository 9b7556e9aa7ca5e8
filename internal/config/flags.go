package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d JSON data directory
//	-c/-config json file path with configs
//	-static-dir built frontend directory
//	-session-sign-key session cookie signing key
//	-session-issuer session token issuer name
//	-session-duration session duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-admin-emails comma separated admin accounts
//	-scoring-address scoring module base URL
//	-server-address parking-mate API base URL (terminal client)
//	-score-refresh-interval score refresh period (e.g., "1h")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var dataDir string
	var jsonConfigPath string
	var staticDir string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var adminEmails string
	var scoringAddress string
	var apiAddress string
	var scoreRefreshInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&dataDir, "d", "", "JSON data directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&staticDir, "static-dir", "", "Built frontend directory")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session signing key")
	flag.StringVar(&sessionIssuer, "session-issuer", "", "Session issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&adminEmails, "admin-emails", "", "Comma separated admin emails")
	flag.StringVar(&scoringAddress, "scoring-address", "", "Scoring module base URL")
	flag.StringVar(&apiAddress, "server-address", "", "Parking-mate API base URL")
	flag.DurationVar(&scoreRefreshInterval, "score-refresh-interval", 0, "Score refresh interval (e.g., 1h)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionSignKey:  sessionSignKey,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
			AdminEmails:     splitList(adminEmails),
		},
		Storage: Storage{
			Files: Files{
				DataDir: dataDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
		},
		Adapter: Adapter{
			ScoringAddress: scoringAddress,
			ServerAddress:  apiAddress,
		},
		Workers: Workers{
			ScoreRefreshInterval: scoreRefreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitList turns "a, b,,c" into ["a" "b" "c"]. It returns nil for an
// empty input so that mergo leaves lower-priority values in place.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
