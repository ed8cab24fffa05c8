package cmd

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Geometry is the shape of the simulated cache.
type Geometry struct {
	BlockSize    int `yaml:"block_size"`
	NumSets      int `yaml:"num_sets"`
	BlocksPerSet int `yaml:"blocks_per_set"`
}

// An argError reports command-line input that cannot be used.
type argError struct {
	msg string
}

func (e *argError) Error() string {
	return e.msg
}

// loadGeometry reads a geometry from a YAML file.
func loadGeometry(path string) (Geometry, error) {
	var g Geometry

	data, err := os.ReadFile(path)
	if err != nil {
		return g, &argError{fmt.Sprintf("can't read config file %s", path)}
	}

	if err := yaml.Unmarshal(data, &g); err != nil {
		return g, &argError{fmt.Sprintf("invalid config file %s: %v", path, err)}
	}

	return g, nil
}

// resolveGeometry combines the config file, if any, with the positional
// geometry arguments. The arguments take precedence.
func resolveGeometry(configPath string, args []string) (Geometry, error) {
	var g Geometry

	if configPath != "" {
		var err error

		g, err = loadGeometry(configPath)
		if err != nil {
			return g, err
		}
	}

	switch len(args) {
	case 0:
		if configPath == "" {
			return g, &argError{
				"usage: cachesim <machine-code file> blockSize numSets blocksPerSet"}
		}
	case 3:
		fields := []*int{&g.BlockSize, &g.NumSets, &g.BlocksPerSet}
		for i, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return g, &argError{
					fmt.Sprintf("%q is not an integer", arg)}
			}

			*fields[i] = n
		}
	default:
		return g, &argError{
			"expected blockSize, numSets, and blocksPerSet together"}
	}

	return g, nil
}
