package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const dnsLookupTimeout = 3 * time.Second

// IsEmailDomainValid confere se o domínio do e-mail resolve de verdade
// (MX, ou A/AAAA como fallback). Não valida a caixa postal, só barra
// domínio digitado errado no cadastro.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])
	if strings.ContainsAny(domain, " \t") {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), dnsLookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
