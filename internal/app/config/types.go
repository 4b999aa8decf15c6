package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	MongoDB struct {
		Enabled  bool
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}
)

type InternalConfig struct {
	App  App
	Auth Auth
	JWT  JWT
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	MaxTimeRequestsPerSeconds int
}

// Auth selects the credential-check collaborator and tunes the login
// throttle. Provider is one of fixture, directory, or http.
type Auth struct {
	Provider                string
	ServiceURL              string
	ServiceTimeoutInSeconds int
	LoginMaxAttempts        int
	LoginWindowInMinutes    int
	LoginRedirectPath       string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
