// Package config defines the format-agnostic model of a probe suite: the
// toolchain description and the ordered list of checks to perform. Concrete
// loaders, such as the HCL one, translate their own schema into this model;
// the executor consumes only the model.
package config
