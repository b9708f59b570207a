package store

import (
	"github.com/nguyentantai21042004/report-flow/internal/config"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

type implStore struct {
	processedDir string
	dailyDir     string
	masterDir    string
	reportsDir   string
	promptsDir   string
	logger       logger.Logger
}

// New creates a Store over the configured workspace partitions.
func New(ws config.WorkspaceConfig, log logger.Logger) Store {
	return &implStore{
		processedDir: ws.Processed,
		dailyDir:     ws.Daily,
		masterDir:    ws.Master,
		reportsDir:   ws.Reports,
		promptsDir:   ws.Prompts,
		logger:       log,
	}
}
