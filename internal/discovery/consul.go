// Package discovery registers the service with a Consul agent so load balancers can find it.
package discovery

import (
	"fmt"
	"os"

	consul "github.com/hashicorp/consul/api"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
)

// Options describes how this instance announces itself.
type Options struct {
	Address     string // agent address, host:port
	ServiceName string
	Port        int
	Host        string // host the agent uses for health checks; defaults to the hostname
	Tags        []string
}

// Registrar owns one service registration.
type Registrar struct {
	agent        *consul.Agent
	registration *consul.AgentServiceRegistration
}

// NewRegistrar builds a registrar. It does not contact the agent.
func NewRegistrar(opts Options) (*Registrar, error) {
	cfg := consul.DefaultConfig()
	cfg.Address = opts.Address

	client, err := consul.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create consul client: %w", err)
	}

	host := opts.Host
	if host == "" {
		if host, err = os.Hostname(); err != nil {
			return nil, fmt.Errorf("resolve hostname: %w", err)
		}
	}

	return &Registrar{
		agent:        client.Agent(),
		registration: newRegistration(opts, host),
	}, nil
}

func newRegistration(opts Options, host string) *consul.AgentServiceRegistration {
	return &consul.AgentServiceRegistration{
		ID:   fmt.Sprintf("%s-%s", opts.ServiceName, host),
		Name: opts.ServiceName,
		Port: opts.Port,
		Tags: opts.Tags,
		Check: &consul.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d%s", host, opts.Port, CheckPath),
			Interval:                       CheckInterval,
			Timeout:                        CheckTimeout,
			DeregisterCriticalServiceAfter: DeregisterCriticalAt,
		},
	}
}

// ServiceID is the ID the instance is registered under.
func (r *Registrar) ServiceID() string {
	return r.registration.ID
}

// Register announces the service to the agent.
func (r *Registrar) Register() error {
	if err := r.agent.ServiceRegister(r.registration); err != nil {
		return fmt.Errorf("register %s: %w", r.registration.ID, err)
	}
	logger.Info(LogMsgRegistered, "service_id", r.registration.ID, "check", r.registration.Check.HTTP)
	return nil
}

// Deregister removes the service from the agent.
func (r *Registrar) Deregister() error {
	if err := r.agent.ServiceDeregister(r.registration.ID); err != nil {
		return fmt.Errorf("deregister %s: %w", r.registration.ID, err)
	}
	logger.Info(LogMsgDeregistered, "service_id", r.registration.ID)
	return nil
}
