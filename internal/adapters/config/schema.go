package config

// File represents the structure of imxbuild.yaml. Every field is optional;
// zero values keep the built-in default.
type File struct {
	Board     string    `yaml:"board"`
	Make      string    `yaml:"make"`
	Path      string    `yaml:"path"`
	Jobs      int       `yaml:"jobs"`
	LogFile   string    `yaml:"logFile"`
	ImagesDir string    `yaml:"imagesDir"`
	HostTools *[]string `yaml:"hostTools"`
	Login     *LoginDTO `yaml:"login"`
}

// LoginDTO represents the credentials section.
type LoginDTO struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}
