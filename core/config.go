package core

// Config dao config
type Config struct {
	App     App            `json:"app"`
	Members []MemberConfig `json:"members"`
	Server  Server         `json:"server"`
}

// App app config
type App struct {
	Name string `json:"name"`
	// Treasury initial treasury balance, read only afterwards
	Treasury string `json:"treasury"`
}

// MemberConfig member and its token balance
type MemberConfig struct {
	ID      string `json:"id"`
	Balance int64  `json:"balance"`
}

// Server api server config
type Server struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}
