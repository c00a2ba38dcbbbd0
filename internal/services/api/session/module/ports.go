package module

import sdom "rolegate/internal/services/api/session/domain"

// Ports declares the surfaces session exposes to other modules
type Ports struct {
	Issuer sdom.IssuerPort
}

// Ports returns the module ports (parity with other API modules)
func (m *Module) Ports() any { return m.ports }
