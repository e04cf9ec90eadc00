package main

// promptCallback is invoked on every keystroke processed by prompt,
// including the final ESC or Enter, with the buffer as it stood after
// that key was applied.
type promptCallback func(query []byte, key int)

// prompt drives a modal mini-buffer: it reuses the main render loop,
// setting the status message to template formatted with the buffer's
// current contents each iteration. ok is false if the prompt was
// cancelled with ESC.
func (e *Editor) prompt(fd int, template string, cb promptCallback) (value string, ok bool) {
	buf := make([]byte, 0, promptBufStart)

	for {
		e.setStatusMessage(template, string(buf))
		e.refreshScreen()

		key, err := readKey(fd)
		if err != nil {
			e.setStatusMessage("%v", err)
			continue
		}

		switch key {
		case keyEnter:
			if len(buf) == 0 {
				break
			}
			if cb != nil {
				cb(buf, key)
			}
			e.setStatusMessage("")
			return string(buf), true

		case keyEsc:
			if cb != nil {
				cb(buf, key)
			}
			e.setStatusMessage("")
			return "", false

		case keyBackspace, ctrlKey('h'), keyDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		default:
			if !isControl(byte(key)) && key < 128 {
				buf = append(buf, byte(key))
			}
		}

		if cb != nil {
			cb(buf, key)
		}
	}
}
