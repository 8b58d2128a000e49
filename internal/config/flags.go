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
//	-d database DSN
//	-redis-host redis host name
//	-redis-port redis port
//	-cache-ttl cache entry time-to-live (e.g., "300s", "5m")
//	-c/-config json file path with configs
//	-secret-key server secret key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit-max max requests per rate-limit window
//	-rate-limit-window rate-limit window length (e.g., "60s")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var redisHost string
	var redisPort int
	var cacheTTL time.Duration
	var jsonConfigPath string
	var secretKey string
	var requestTimeout time.Duration
	var rateLimitMax int
	var rateLimitWindow time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&redisHost, "redis-host", "", "Redis host name")
	flag.IntVar(&redisPort, "redis-port", 0, "Redis port")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Cache TTL (e.g., 300s, 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secretKey, "secret-key", "", "Server secret key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&rateLimitMax, "rate-limit-max", 0, "Max requests per rate-limit window")
	flag.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate-limit window length (e.g., 60s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SecretKey: secretKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Host:     redisHost,
				Port:     redisPort,
				CacheTTL: cacheTTL,
			},
		},
		Security: Security{
			RateLimitMax:    rateLimitMax,
			RateLimitWindow: rateLimitWindow,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so the
// merge step falls through to the next configuration source.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
