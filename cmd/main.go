package main

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"sort"
	"strings"

	"github.com/brettbedarf/treebin"
	"github.com/brettbedarf/treebin/config"
	"github.com/brettbedarf/treebin/internal/util"
	"github.com/brettbedarf/treebin/requests"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		nodesDef   string
		verbose    int
	)
	flag.StringVar(&nodesDef, "nodes", "", "Path to nodes def file")
	flag.StringVar(&nodesDef, "n", "", "--nodes (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config file (yaml or json)")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.IntVar(&verbose, "verbose", config.DefaultVerbosity,
		"Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", config.DefaultVerbosity, "--verbose (shorthand)")
	flag.Parse()

	// Initialize logger
	logLvl := config.VerbosityToLevel(verbose)
	util.InitializeLogger(logLvl)
	logger := util.GetLogger("main")

	// Build config: file overrides first, then the cli verbosity on top
	cfg := config.NewDefaultConfig()
	if configPath != "" {
		override, err := config.LoadConfigOverrideFile(configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
		cfg.Merge(override)
	}
	cfg.LogLvl = logLvl

	logger.Info().Int("verbose", verbose).Str("nodes", nodesDef).Str("root", cfg.RootName).
		Msg("treebin initializing")

	core := treebin.New(cfg)

	// Load seed nodes
	if nodesDef != "" {
		defData, err := os.ReadFile(nodesDef)
		if err != nil {
			logger.Fatal().Err(err).Str("nodes", nodesDef).Msg("Failed to read nodes file")
		}
		var rawNodes []json.RawMessage
		if err := json.Unmarshal(defData, &rawNodes); err != nil {
			logger.Fatal().Err(err).Msg("Failed to unmarshal nodes file")
		}

		var fileNodes []*requests.FileNode
		var folderNodes []*requests.FolderNode

		for _, rawNode := range rawNodes {
			nodeType, err := requests.GetNodeType(rawNode)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to get node type")
				continue
			}

			switch nodeType {
			case treebin.FileNodeType:
				fileNode, err := requests.UnmarshalFileNode(rawNode)
				if err != nil {
					logger.Error().Err(err).Msg("Failed to unmarshal file node")
					continue
				}
				fileNodes = append(fileNodes, fileNode)
				logger.Debug().Str("parent", fileNode.ParentPath).Str("name", fileNode.Request.Name).
					Msg("Processed file node")

			case treebin.FolderNodeType:
				folderNode, err := requests.UnmarshalFolderNode(rawNode)
				if err != nil {
					logger.Error().Err(err).Msg("Failed to unmarshal folder node")
					continue
				}
				folderNodes = append(folderNodes, folderNode)
				logger.Debug().Str("parent", folderNode.ParentPath).Str("name", folderNode.Request.Name).
					Msg("Processed folder node")

			default:
				logger.Warn().Str("type", string(nodeType)).Msg("Unknown node type")
			}
		}

		// Folders first, shallow paths before deep ones, so parents exist
		// before their children
		sort.SliceStable(folderNodes, func(i, j int) bool {
			return strings.Count(folderNodes[i].ParentPath, "/") < strings.Count(folderNodes[j].ParentPath, "/")
		})
		for _, node := range folderNodes {
			if err := core.CreateFolder(node.ParentPath, node.Request.Name); err != nil {
				if errors.Is(err, treebin.ErrExists) {
					logger.Warn().Str("parent", node.ParentPath).Str("name", node.Request.Name).
						Msg("Folder already exists, skipping")
					continue
				}
				logger.Error().Err(err).Str("parent", node.ParentPath).Str("name", node.Request.Name).
					Msg("Failed to create folder")
			}
		}
		for _, node := range fileNodes {
			if _, err := core.CreateFile(node.ParentPath, node.Request); err != nil {
				logger.Error().Err(err).Str("parent", node.ParentPath).Str("name", node.Request.Name).
					Msg("Failed to create file")
			}
		}

		logger.Info().Int("files", len(fileNodes)).Int("folders", len(folderNodes)).
			Msg("Seed nodes loaded")
	}

	// Dump the namespace snapshot for piping into other tools
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(core.Tree()); err != nil {
		logger.Fatal().Err(err).Msg("Failed to encode namespace snapshot")
	}
}
