// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes circuit breakers and retry logic used around the external
// summarization providers and the optional report database.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.OpenAIAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
//
//	err := retry.WithBackoff(ctx, retry.AIAPIConfig(), func() error {
//	    return performOperation()
//	})
package resilience
