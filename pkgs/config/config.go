package config

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// Configuration Structures
////////////////////////////////////////////////////////////////////////////////

// Credentials holds the application-only API credentials.
type Credentials struct {
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
}

// Config represents the main application configuration
type Config struct {
	Credentials      Credentials `yaml:"credentials"`
	GeoDataDir       string      `yaml:"geo_data_dir"`
	RequestsPerSec   float64     `yaml:"requests_per_sec"`
	SearchPageSize   int         `yaml:"search_page_size"`
	MaxSearchResults int64       `yaml:"max_search_results"`
}

////////////////////////////////////////////////////////////////////////////////
// Configuration Management Functions
////////////////////////////////////////////////////////////////////////////////

// ReadConfig reads configuration from the specified path
func ReadConfig(path string) (*Config, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var result Config
	err = yaml.Unmarshal(data, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// WriteConfig writes configuration to the specified path
func WriteConfig(path string, conf *Config) error {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, bytes.NewReader(data))
	return err
}

// PromptConfig interactively prompts user for configuration and saves it
func PromptConfig(saveto string) (*Config, error) {
	conf := Config{}
	scan := bufio.NewScanner(os.Stdin)

	print("enter consumer key: ")
	scan.Scan()
	conf.Credentials.ConsumerKey = scan.Text()

	print("enter consumer secret: ")
	scan.Scan()
	conf.Credentials.ConsumerSecret = scan.Text()

	return &conf, WriteConfig(saveto, &conf)
}
