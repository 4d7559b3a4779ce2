package cmd

type Config struct {
	HTTPPort                     string
	DBHost                       string
	DBPort                       string
	DBUser                       string
	DBPassword                   string
	DBName                       string
	DBSslMode                    string
	PaymentBaseURL               string
	DeliveryCityFeeKopecks       string
	DeliveryRemoteFeeKopecks     string
	FreeDeliveryThresholdKopecks string
}
