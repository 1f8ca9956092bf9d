package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	CarrierBaseURL         string
	CarrierEmail           string
	CarrierPassword        string
	CarrierTimeoutSeconds  string
	CarrierFallbackBaseURL string
}
