package config

// Otel configures trace export. Tracing stays local when CollectorURL is empty.
type Otel struct {
	ServiceName   string  `env:"OTEL_SERVICE_NAME" envDefault:"product-catalog"`
	CollectorURL  string  `env:"OTEL_COLLECTOR_URL"`
	Insecure      bool    `env:"OTEL_INSECURE"`
	TraceIDRatio  float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"0.1"`
	CollectorAuth string  `env:"OTEL_COLLECTOR_AUTH"`

	K8sPodName   string `env:"K8S_POD_NAME"`
	K8sNamespace string `env:"K8S_NAMESPACE"`
}

func (o Otel) ExportEnabled() bool {
	return o.CollectorURL != ""
}

// CollectorHeaders returns the gRPC metadata sent with every export.
func (o Otel) CollectorHeaders() map[string]string {
	if o.CollectorAuth == "" {
		return nil
	}
	return map[string]string{"Authorization": o.CollectorAuth}
}
