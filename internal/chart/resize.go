package chart

// StartResizeObserver makes size changes of the target element call Resize
// on the chart. It is a no-op when already active. Bursts of size changes
// are not debounced.
func (c *Chart) StartResizeObserver() error {
	if err := c.live("start_resize"); err != nil {
		return err
	}
	if c.observer != nil {
		return nil
	}
	h := c.handle
	obs, err := c.host.ObserveResize(c.el, func() { h.Resize() })
	if err != nil {
		logger.Error().Str("element", c.elementID).Err(err).Msg("resize observer failed")
		return err
	}
	c.observer = obs
	return nil
}

// StopResizeObserver disconnects the observer if there is one.
func (c *Chart) StopResizeObserver() {
	if c == nil || c.observer == nil {
		return
	}
	c.observer.Disconnect()
	c.observer = nil
}

// ResizeObserving reports whether size observation is active.
func (c *Chart) ResizeObserving() bool { return c != nil && c.observer != nil }
