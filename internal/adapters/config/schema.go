package config

// profileDTO is the YAML shape of the picon.yaml profile.
type profileDTO struct {
	Width     *int     `yaml:"width"`
	Height    *int     `yaml:"height"`
	Prefix    *string  `yaml:"prefix"`
	Upscale   *bool    `yaml:"upscale"`
	Mode      *string  `yaml:"mode"`
	SVGEngine *string  `yaml:"svg_engine"`
	Only      []string `yaml:"only"`
	Exclude   []string `yaml:"exclude"`
	Match     []string `yaml:"match"`
}
