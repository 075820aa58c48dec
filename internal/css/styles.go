// SPDX-License-Identifier: MIT
package css

import "strings"

// Styles renders sections 4 and 5. Both only reference custom properties,
// so the output does not depend on the design system or preset.
func Styles(includeBase, includeUtilities bool) string {
	var parts []string
	if includeBase {
		parts = append(parts, baseStyles)
	}
	if includeUtilities {
		parts = append(parts, utilityStyles)
	}
	return strings.Join(parts, "\n\n")
}

const baseStyles = BaseStylesMarker + `

/* Base element styles */
* {
  border-color: hsl(var(--border));
}

body {
  background-color: hsl(var(--background));
  color: hsl(var(--foreground));
  font-family: var(--font-sans);
  font-size: var(--text-base);
  font-weight: var(--font-weight-body);
  line-height: var(--leading-normal);
  letter-spacing: var(--letter-spacing);
  font-feature-settings: "rlig" 1, "calt" 1;
}

*,
*::before,
*::after {
  transition: background-color var(--duration-normal) var(--easing),
              border-color var(--duration-normal) var(--easing),
              color var(--duration-normal) var(--easing);
}

::selection {
  background-color: hsl(var(--selection));
}

/* Typography */
h1, h2, h3, h4, h5, h6 {
  font-family: var(--font-display);
  font-weight: var(--font-weight-heading);
  color: hsl(var(--foreground));
}

h1 { font-size: calc(var(--text-base) * var(--heading-scale) * var(--heading-scale) * var(--heading-scale) * var(--heading-scale)); }
h2 { font-size: calc(var(--text-base) * var(--heading-scale) * var(--heading-scale) * var(--heading-scale)); }
h3 { font-size: calc(var(--text-base) * var(--heading-scale) * var(--heading-scale)); }
h4 { font-size: calc(var(--text-base) * var(--heading-scale)); }
h5, h6 { font-size: var(--text-base); }

a {
  color: hsl(var(--link));
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

code, pre {
  background-color: hsl(var(--code));
  color: hsl(var(--code-foreground));
}

/* Layout */
.container {
  max-width: var(--container-width);
  margin: 0 auto;
}

.grid-theme {
  display: grid;
  gap: var(--grid-gap);
}

.section {
  padding-block: var(--section-spacing);
}

/* Component shapes */
.btn, button {
  border-radius: var(--button-radius);
}

.card {
  border-radius: var(--card-radius);
}

.input, input, textarea, select {
  border-radius: var(--input-radius);
}

input:focus-visible, textarea:focus-visible, select:focus-visible, button:focus-visible {
  outline: var(--focus-ring-width) solid hsl(var(--ring));
  outline-offset: 2px;
}

/* Surfaces */
.shadow-sm { box-shadow: var(--shadow-sm); }
.shadow-md { box-shadow: var(--shadow-md); }
.shadow-lg { box-shadow: var(--shadow-lg); }

.border {
  border-width: var(--border-width);
  border-style: var(--border-style);
}

.surface-glass {
  backdrop-filter: blur(var(--backdrop-blur, 0));
  background: hsl(var(--card) / 0.8);
}

.surface-noise {
  position: relative;
}

.surface-noise::before {
  content: '';
  position: absolute;
  inset: 0;
  opacity: var(--noise-opacity, 0);
  background-image: url("data:image/svg+xml,%3Csvg viewBox='0 0 256 256' xmlns='http://www.w3.org/2000/svg'%3E%3Cfilter id='noiseFilter'%3E%3CfeTurbulence type='fractalNoise' baseFrequency='0.9' numOctaves='4' stitchTiles='stitch'/%3E%3C/filter%3E%3Crect width='100%25' height='100%25' filter='url(%23noiseFilter)'/%3E%3C/svg%3E");
  pointer-events: none;
}

/* Animations */
.transition {
  transition-duration: var(--duration-normal);
  transition-timing-function: var(--easing);
}

.transition-fast {
  transition-duration: var(--duration-fast);
  transition-timing-function: var(--easing);
}

.transition-slow {
  transition-duration: var(--duration-slow);
  transition-timing-function: var(--easing);
}

.hover-lift:hover {
  transform: translateY(var(--hover-translate-y, -2px)) scale(var(--hover-scale, 1.02));
}

.hover-scale:hover {
  transform: scale(var(--hover-scale, 1.05));
}

.hover-glow:hover {
  box-shadow: 0 0 20px hsl(var(--primary) / 0.3);
}

@media (prefers-reduced-motion: reduce) {
  *, *::before, *::after {
    animation-duration: 0.01ms !important;
    animation-iteration-count: 1 !important;
    transition-duration: 0.01ms !important;
  }

  .hover-lift:hover,
  .hover-scale:hover {
    transform: none;
  }
}`

const utilityStyles = `/* Theme utility classes */

/* Backgrounds */
.bg-background { background-color: hsl(var(--background)); }
.bg-foreground { background-color: hsl(var(--foreground)); }
.bg-card { background-color: hsl(var(--card)); }
.bg-popover { background-color: hsl(var(--popover)); }
.bg-primary { background-color: hsl(var(--primary)); }
.bg-secondary { background-color: hsl(var(--secondary)); }
.bg-muted { background-color: hsl(var(--muted)); }
.bg-accent { background-color: hsl(var(--accent)); }
.bg-destructive { background-color: hsl(var(--destructive)); }
.bg-success { background-color: hsl(var(--success)); }
.bg-warning { background-color: hsl(var(--warning)); }
.bg-info { background-color: hsl(var(--info)); }

/* Text colors */
.text-foreground { color: hsl(var(--foreground)); }
.text-card-foreground { color: hsl(var(--card-foreground)); }
.text-popover-foreground { color: hsl(var(--popover-foreground)); }
.text-primary { color: hsl(var(--primary)); }
.text-primary-foreground { color: hsl(var(--primary-foreground)); }
.text-secondary-foreground { color: hsl(var(--secondary-foreground)); }
.text-muted-foreground { color: hsl(var(--muted-foreground)); }
.text-accent-foreground { color: hsl(var(--accent-foreground)); }
.text-destructive { color: hsl(var(--destructive)); }
.text-destructive-foreground { color: hsl(var(--destructive-foreground)); }
.text-success { color: hsl(var(--success)); }
.text-success-foreground { color: hsl(var(--success-foreground)); }
.text-warning { color: hsl(var(--warning)); }
.text-warning-foreground { color: hsl(var(--warning-foreground)); }
.text-info { color: hsl(var(--info)); }
.text-link { color: hsl(var(--link)); }

/* Borders */
.border-border { border-color: hsl(var(--border)); }
.border-input { border-color: hsl(var(--input)); }
.border-primary { border-color: hsl(var(--primary)); }
.border-secondary { border-color: hsl(var(--secondary)); }
.border-destructive { border-color: hsl(var(--destructive)); }
.border-success { border-color: hsl(var(--success)); }
.border-warning { border-color: hsl(var(--warning)); }

.ring-ring { --tw-ring-color: hsl(var(--ring)); }

.rounded-theme { border-radius: var(--radius); }
.rounded-theme-sm { border-radius: var(--radius-sm); }
.rounded-theme-lg { border-radius: var(--radius-lg); }

/* Component patterns */
.card-theme {
  background-color: hsl(var(--card));
  color: hsl(var(--card-foreground));
  border: var(--border-width) var(--border-style) hsl(var(--border));
  border-radius: var(--card-radius);
  box-shadow: var(--shadow-sm);
}

.btn-primary {
  background-color: hsl(var(--primary));
  color: hsl(var(--primary-foreground));
  border-radius: var(--button-radius);
}

.btn-primary:hover {
  background-color: hsl(var(--primary) / 0.9);
}

.btn-secondary {
  background-color: hsl(var(--secondary));
  color: hsl(var(--secondary-foreground));
  border-radius: var(--button-radius);
}

.btn-secondary:hover {
  background-color: hsl(var(--secondary) / 0.8);
}

.btn-destructive {
  background-color: hsl(var(--destructive));
  color: hsl(var(--destructive-foreground));
  border-radius: var(--button-radius);
}

.btn-destructive:hover {
  background-color: hsl(var(--destructive) / 0.9);
}

.input-theme {
  background-color: transparent;
  border: 1px solid hsl(var(--input));
  border-radius: var(--input-radius);
}

.input-theme:focus {
  outline: none;
  box-shadow: 0 0 0 var(--focus-ring-width) hsl(var(--ring) / 0.5);
}

/* Badges */
.badge-primary {
  background-color: hsl(var(--primary));
  color: hsl(var(--primary-foreground));
}

.badge-secondary {
  background-color: hsl(var(--secondary));
  color: hsl(var(--secondary-foreground));
}

.badge-destructive {
  background-color: hsl(var(--destructive));
  color: hsl(var(--destructive-foreground));
}

.badge-success {
  background-color: hsl(var(--success));
  color: hsl(var(--success-foreground));
}

.badge-warning {
  background-color: hsl(var(--warning));
  color: hsl(var(--warning-foreground));
}`
