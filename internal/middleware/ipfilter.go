// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseCIDRs drops entries that do not parse. A bare address is
// treated as a single-host range.
func parseCIDRs(ranges []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, cidr := range ranges {
		cidr = strings.TrimSpace(cidr)
		if !strings.Contains(cidr, "/") {
			if ip := net.ParseIP(cidr); ip != nil {
				bits := 32
				if ip.To4() == nil {
					bits = 128
				}
				nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			}
			continue
		}
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			nets = append(nets, ipNet)
		}
	}
	return nets
}

func containsIP(nets []*net.IPNet, ip net.IP) bool {
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// IPFilterMiddleware blocks requests from any address in blocklist
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blocked := parseCIDRs(blocklist)

	return func(c *gin.Context) {
		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}
		if containsIP(blocked, clientIP) {
			c.AbortWithStatus(403)
			return
		}
		c.Next()
	}
}

// AllowOnly admits only addresses inside allowlist. An empty allowlist
// admits everyone. It guards /metrics.
func AllowOnly(allowlist []string) gin.HandlerFunc {
	allowed := parseCIDRs(allowlist)

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}
		clientIP := extractIP(c)
		if clientIP == nil || !containsIP(allowed, clientIP) {
			c.AbortWithStatus(403)
			return
		}
		c.Next()
	}
}

func extractIP(c *gin.Context) net.IP {
	return net.ParseIP(getClientIP(c))
}
