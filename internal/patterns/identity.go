package patterns

import "regexp"

// IdentityMatcher is one predicate+extractor pair in the identity priority
// chain. Pattern is matched against a block's header line; Group selects
// the capture that becomes the identity key.
type IdentityMatcher struct {
	Name    string
	Pattern *regexp.Regexp
	Group   int
}

// TryMatch tests the matcher against a header line and returns the
// extracted identity key on success.
func (m IdentityMatcher) TryMatch(line string) (string, bool) {
	groups := m.Pattern.FindStringSubmatch(line)
	if groups == nil || m.Group >= len(groups) || groups[m.Group] == "" {
		return "", false
	}
	return groups[m.Group], true
}

// defaultIdentityMatchers returns the ordered identity chain. First match
// wins, so specific vendor forms come before looser address matchers.
func defaultIdentityMatchers() []IdentityMatcher {
	return []IdentityMatcher{
		{
			Name: "interface-name",
			// longest vendor prefixes first so "GigabitEthernet" is not
			// truncated to "Ethernet" or "Gi"
			Pattern: regexp.MustCompile(`(?i)^\s*((?:hundredgigabitethernet|tengigabitethernet|twentyfivegige|hundredgige|fortygige|gigabitethernet|fastethernet|port-channel|bundle-ether|management|mgmteth|ethernet|loopback|tunnel-te|tunnel|cellular|dialer|serial|bridge|tengige|vlan|wlan|ether|gig|eth|irb|gi|te|fa|po|lo|se|xe|ge|et|ae)[ -]?\d[\d/.:]*)`),
			Group:   1,
		},
		{
			Name:    "route-cidr",
			Pattern: regexp.MustCompile(`\b(\d{1,3}(?:\.\d{1,3}){3}/\d{1,2})\b`),
			Group:   1,
		},
		{
			Name:    "bgp-neighbor",
			Pattern: regexp.MustCompile(`(?i)^\s*(?:bgp\s+)?neighbor\s+(?:is\s+)?([0-9a-f][\w.:]*)`),
			Group:   1,
		},
		{
			Name:    "leading-ipv4",
			Pattern: regexp.MustCompile(`^\s*(\d{1,3}(?:\.\d{1,3}){3})\b`),
			Group:   1,
		},
		{
			Name:    "mac-address",
			Pattern: regexp.MustCompile(`\b([0-9a-fA-F]{4}\.[0-9a-fA-F]{4}\.[0-9a-fA-F]{4}|[0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5})\b`),
			Group:   1,
		},
	}
}
