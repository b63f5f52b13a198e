package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Search struct {
		Host              string  `yaml:"host" json:"host"`
		Location          string  `yaml:"location" json:"location"`
		GeoID             string  `yaml:"geo_id" json:"geo_id"`
		RecencyParam      string  `yaml:"recency_param" json:"recency_param"`
		TimeoutSeconds    int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		MaxSkills         int     `yaml:"max_skills" json:"max_skills"`
		RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
		Burst             int     `yaml:"burst" json:"burst"`
	} `yaml:"search" json:"search"`

	Ranking struct {
		RelevanceFloor int `yaml:"relevance_floor" json:"relevance_floor"`
		RecentMaxDays  int `yaml:"recent_max_days" json:"recent_max_days"`
	} `yaml:"ranking" json:"ranking"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
