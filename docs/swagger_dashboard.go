package docs

// @title           Lapla Dashboard API
// @version         1.0
// @description     Motorsport timing dashboard: schedules, sessions, drivers, laps, telemetry, track maps, derived metrics, insights and exports. Payloads synthesized from sample data carry "source": "sample".
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /
