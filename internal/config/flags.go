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
//	-root-dir server root directory
//	-preferred-dir directory a session opens to
//	-base-url URL prefix the application is served under
//	-default-url URL "/" redirects to
//	-token access token (generated when left empty)
//	-static-dir static assets directory
//	-config-dir user configuration directory
//	-extensions colon-separated extension scan roots
//	-mathjax-url MathJax script location
//	-mathjax-config MathJax configuration profile
//	-allow-hidden serve hidden files and directories
//	-expose-app-in-browser expose the app instance via window.nbserveapp
//	-no-custom-css disable the custom stylesheet
//	-terminals report terminals as available
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var rootDir, preferredDir string
	var baseURL, defaultURL, token string
	var staticDir, configDir string
	var extensionPaths string
	var mathjaxURL, mathjaxConfig string
	var allowHidden, exposeAppInBrowser, noCustomCSS, terminals bool
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&rootDir, "root-dir", "", "Server root directory")
	flag.StringVar(&preferredDir, "preferred-dir", "", "Directory a session opens to")
	flag.StringVar(&baseURL, "base-url", "", "URL prefix the application is served under")
	flag.StringVar(&defaultURL, "default-url", "", "URL the root path redirects to")
	flag.StringVar(&token, "token", "", "Access token")
	flag.StringVar(&staticDir, "static-dir", "", "Static assets directory")
	flag.StringVar(&configDir, "config-dir", "", "User configuration directory")
	flag.StringVar(&extensionPaths, "extensions", "", "Colon-separated extension scan roots")
	flag.StringVar(&mathjaxURL, "mathjax-url", "", "MathJax script location")
	flag.StringVar(&mathjaxConfig, "mathjax-config", "", "MathJax configuration profile")
	flag.BoolVar(&allowHidden, "allow-hidden", false, "Serve hidden files and directories")
	flag.BoolVar(&exposeAppInBrowser, "expose-app-in-browser", false, "Expose the app instance via window.nbserveapp")
	flag.BoolVar(&noCustomCSS, "no-custom-css", false, "Disable the custom stylesheet")
	flag.BoolVar(&terminals, "terminals", false, "Report terminals as available")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	var paths []string
	if extensionPaths != "" {
		paths = strings.Split(extensionPaths, ":")
	}

	return &StructuredConfig{
		App: App{
			BaseURL:            baseURL,
			Token:              token,
			DefaultURL:         defaultURL,
			StaticDir:          staticDir,
			ConfigDir:          configDir,
			MathjaxURL:         mathjaxURL,
			MathjaxConfig:      mathjaxConfig,
			ExposeAppInBrowser: exposeAppInBrowser,
			NoCustomCSS:        noCustomCSS,
		},
		Content: Content{
			RootDir:      rootDir,
			PreferredDir: preferredDir,
			AllowHidden:  allowHidden,
		},
		Extensions: Extensions{
			Paths: paths,
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			TerminalsAvailable: terminals,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so the flag
// layer does not shadow lower-priority sources.
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
