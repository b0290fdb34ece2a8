// Package seed holds the canonical demo dataset: two accounts and three
// posts, used by the demo binary and scenario tests.
package seed

import "github.com/sai-shivani-9/blogging-platform/models"

func Users() []*models.User {
	return []*models.User{
		{
			ID:             "user-1",
			Username:       "Alice",
			Email:          "alice@example.com",
			Password:       "password123",
			Role:           models.RoleUser,
			CreatedPostIDs: []string{"post-1", "post-3"},
			LikedPostIDs:   []string{"post-2"},
			MadeCommentIDs: []string{"c2"},
		},
		{
			ID:             "user-2",
			Username:       "Bob",
			Email:          "bob@example.com",
			Password:       "password123",
			Role:           models.RoleAdmin,
			CreatedPostIDs: []string{"post-2"},
			LikedPostIDs:   []string{"post-1"},
			MadeCommentIDs: []string{"c1"},
		},
	}
}

func Posts() []*models.Post {
	return []*models.Post{
		{
			ID:             "post-1",
			Title:          "Getting Started with React Hooks",
			Author:         "Alice",
			Date:           "2025-07-20",
			Content:        "This is the full content of the first blog post about React Hooks. Hooks allow you to use state and other React features without writing a class. They were introduced in React 16.8. Common hooks include useState, useEffect, useContext, useRef, etc.",
			ContentSnippet: "Learn the basics of React Hooks and how they simplify state management in functional components...",
			ImageURL:       "https://placehold.co/600x400/000000/FFFFFF?text=React+Hooks",
			Likes:          15,
			Comments: []models.Comment{
				{ID: "c1", Author: "Bob", Text: "Great post!", UserID: "user-2", PostID: "post-1"},
			},
			Category: "Web Development",
			UserID:   "user-1",
		},
		{
			ID:             "post-2",
			Title:          "Mastering Tailwind CSS for Responsive Design",
			Author:         "Bob",
			Date:           "2025-07-22",
			Content:        "Dive deep into Tailwind CSS and discover how to build highly responsive and customizable user interfaces with utility-first approach. This post covers breakpoints, custom configurations, and best practices.",
			ContentSnippet: "A comprehensive guide to building responsive UIs efficiently with Tailwind CSS...",
			ImageURL:       "https://placehold.co/600x400/3B82F6/FFFFFF?text=Tailwind+CSS",
			Likes:          22,
			Comments: []models.Comment{
				{ID: "c2", Author: "Alice", Text: "Very helpful!", UserID: "user-1", PostID: "post-2"},
			},
			Category: "CSS",
			UserID:   "user-2",
		},
		{
			ID:             "post-3",
			Title:          "The Power of Node.js and Express.js",
			Author:         "Alice",
			Date:           "2025-07-25",
			Content:        "Explore how Node.js and Express.js form a powerful combination for building scalable and efficient backend APIs. We will cover routing, middleware, and connecting to databases.",
			ContentSnippet: "Building robust backend APIs with Node.js and Express.js...",
			ImageURL:       "https://placehold.co/600x400/4CAF50/FFFFFF?text=Node+Express",
			Likes:          8,
			Comments:       []models.Comment{},
			Category:       "Backend",
			UserID:         "user-1",
		},
	}
}

func Categories() []string {
	return []string{"Web Development", "CSS", "Backend", "Technology", "Lifestyle"}
}
