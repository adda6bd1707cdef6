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
//	-c/-config json file path with configs
//	-cache-path local envelope cache SQLite path
//	-blob-backend blob store backend (memory, ipfs, gateway)
//	-ipfs-endpoint IPFS node API address
//	-gateway-url pinning gateway base URL
//	-registry-url commitment registry base URL
//	-wallet-key dev wallet private key in hex
//	-proof-backend proving backend (fake, gnark)
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var cachePath string
	var blobBackend string
	var ipfsEndpoint string
	var gatewayURL string
	var registryURL string
	var walletKey string
	var proofBackend string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cachePath, "cache-path", "", "Local envelope cache SQLite path")
	flag.StringVar(&blobBackend, "blob-backend", "", "Blob store backend (memory, ipfs, gateway)")
	flag.StringVar(&ipfsEndpoint, "ipfs-endpoint", "", "IPFS node API address")
	flag.StringVar(&gatewayURL, "gateway-url", "", "Pinning gateway base URL")
	flag.StringVar(&registryURL, "registry-url", "", "Commitment registry base URL")
	flag.StringVar(&walletKey, "wallet-key", "", "Dev wallet private key (hex)")
	flag.StringVar(&proofBackend, "proof-backend", "", "Proving backend (fake, gnark)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Wallet: Wallet{
			PrivateKeyHex: walletKey,
		},
		Storage: Storage{
			Blobs: Blobs{
				Backend:        blobBackend,
				IPFSEndpoint:   ipfsEndpoint,
				GatewayURL:     gatewayURL,
				RequestTimeout: requestTimeout,
			},
			Cache: Cache{
				Path: cachePath,
			},
		},
		Registry: Registry{
			URL:            registryURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Proof: Proof{
			Backend: proofBackend,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
